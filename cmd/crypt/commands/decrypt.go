package commands

import (
	"fmt"
	"log/slog"

	"github.com/ai8future/crypt"
)

// DecryptParams holds the inputs of the decrypt command. An empty Algorithm
// is detected from the envelope header.
type DecryptParams struct {
	Algorithm string
	Password  PasswordSource
	In        string
	Out       string
}

// RunDecrypt opens an envelope and writes the plaintext.
func RunDecrypt(codec *crypt.Codec, logger *slog.Logger, ioTuple IOTuple, params DecryptParams) error {
	input, err := readInput(params.In, ioTuple)
	if err != nil {
		return err
	}
	envelope := crypt.NormalizeEnvelope(input)

	algorithm := params.Algorithm
	if algorithm == "" {
		detected, err := crypt.DetectAlgorithm(envelope)
		if err != nil {
			return fmt.Errorf("failed to detect algorithm: %w", err)
		}
		algorithm = string(detected)
	}

	password, err := resolvePassword(params.Password, ioTuple)
	if err != nil {
		return err
	}

	plaintext, err := codec.Decrypt(algorithm, password, envelope)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}
	if err := writeOutput(params.Out, plaintext, ioTuple); err != nil {
		return err
	}

	logger.Info("envelope decrypted", slog.String("algorithm", algorithm))
	return nil
}
