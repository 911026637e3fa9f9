package commands

import (
	"fmt"
	"log/slog"

	"github.com/ai8future/crypt"
)

// ResealParams holds the inputs of the reseal command.
type ResealParams struct {
	NewAlgorithm string
	Password     PasswordSource
	NewPassword  PasswordSource
	In           string
	Out          string
}

// RunReseal re-encrypts an envelope under a new algorithm and password. The
// current algorithm is read from the envelope header.
func RunReseal(codec *crypt.Codec, logger *slog.Logger, ioTuple IOTuple, params ResealParams) error {
	input, err := readInput(params.In, ioTuple)
	if err != nil {
		return err
	}
	envelope := crypt.NormalizeEnvelope(input)

	current, err := crypt.DetectAlgorithm(envelope)
	if err != nil {
		return fmt.Errorf("failed to detect algorithm: %w", err)
	}

	password, err := resolvePassword(params.Password, ioTuple)
	if err != nil {
		return err
	}
	newPassword, err := resolvePassword(params.NewPassword, ioTuple)
	if err != nil {
		return err
	}

	resealed, err := codec.Reseal(string(current), password, envelope, params.NewAlgorithm, newPassword)
	if err != nil {
		return fmt.Errorf("failed to reseal: %w", err)
	}
	if err := writeOutput(params.Out, resealed, ioTuple); err != nil {
		return err
	}

	logger.Info("envelope resealed",
		slog.String("from", string(current)),
		slog.String("to", params.NewAlgorithm),
	)
	return nil
}
