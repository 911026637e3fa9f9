package commands

import (
	"fmt"
	"log/slog"

	"github.com/ai8future/crypt"
)

// EncryptParams holds the inputs of the encrypt command.
type EncryptParams struct {
	Algorithm string
	Password  PasswordSource
	In        string
	Out       string
}

// RunEncrypt seals the input text into an envelope.
func RunEncrypt(codec *crypt.Codec, logger *slog.Logger, ioTuple IOTuple, params EncryptParams) error {
	if !crypt.Contains(params.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s (valid options: %v)", params.Algorithm, crypt.Algorithms())
	}

	plaintext, err := readInput(params.In, ioTuple)
	if err != nil {
		return err
	}
	password, err := resolvePassword(params.Password, ioTuple)
	if err != nil {
		return err
	}

	envelope, err := codec.Encrypt(params.Algorithm, password, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}
	if err := writeOutput(params.Out, envelope, ioTuple); err != nil {
		return err
	}

	logger.Info("input encrypted", slog.String("algorithm", params.Algorithm))
	return nil
}
