package crypt

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// Codec seals text into envelopes and opens envelopes back into text.
// It holds only immutable configuration and is safe for concurrent use.
type Codec struct {
	config *config
}

// config holds codec configuration options.
type config struct {
	logger               *slog.Logger
	compressionEnabled   bool
	compressionThreshold int
	strict               bool
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		logger:               slog.New(slog.DiscardHandler),
		compressionThreshold: defaultCompressionThreshold,
	}
}

// defaultCodec backs the package-level Encrypt and Decrypt.
var defaultCodec = &Codec{config: defaultConfig()}

// New creates a Codec with the given options.
//
// Example:
//
//	codec, err := crypt.New(
//	    crypt.WithLogger(logger),
//	    crypt.WithStrictParsing(),
//	)
func New(opts ...Option) (*Codec, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		return nil, fmt.Errorf("%w: nil logger", ErrInvalidOption)
	}
	if cfg.compressionThreshold <= 0 {
		return nil, fmt.Errorf("%w: compression threshold must be > 0", ErrInvalidOption)
	}

	return &Codec{config: cfg}, nil
}

// Encrypt seals plaintext under password with the named algorithm and
// returns the envelope text. plaintext must be valid UTF-8.
func (c *Codec) Encrypt(alg, password, plaintext string) (string, error) {
	entry, ok := lookup(alg)
	if !ok {
		return "", c.fail(newError(OpEncrypt, ErrInvalidAlgorithm, alg, nil))
	}
	if !utf8.ValidString(plaintext) {
		return "", c.fail(newError(OpEncrypt, ErrInvalidInputText, invalidUTF8Detail([]byte(plaintext)), nil))
	}

	key := DeriveKey([]byte(password))
	defer zeroKey(&key)
	nonce := DeriveNonce(key)

	aead, err := entry.newAEAD(key[:])
	if err != nil {
		return "", c.fail(newError(OpEncrypt, ErrSealFailed, err.Error(), err))
	}
	if aead.NonceSize() != len(nonce) {
		detail := fmt.Sprintf("nonce size %d, want %d", len(nonce), aead.NonceSize())
		return "", c.fail(newError(OpEncrypt, ErrSealFailed, detail, nil))
	}

	data, compressed := maybeCompress([]byte(plaintext), c.config.compressionThreshold, c.config.compressionEnabled)
	sealed := aead.Seal(nil, nonce, data, nil)

	c.config.logger.Debug("envelope sealed",
		slog.String("algorithm", alg),
		slog.Int("plaintext_bytes", len(plaintext)),
		slog.Int("sealed_bytes", len(sealed)),
		slog.Bool("compressed", compressed),
	)
	return formatEnvelope(entry.id, sealed), nil
}

// Decrypt opens an envelope produced by Encrypt with the same algorithm and
// password. The result is guaranteed to be valid UTF-8.
func (c *Codec) Decrypt(alg, password, envelope string) (string, error) {
	entry, ok := lookup(alg)
	if !ok {
		return "", c.fail(newError(OpDecrypt, ErrInvalidAlgorithm, alg, nil))
	}

	key := DeriveKey([]byte(password))
	defer zeroKey(&key)
	nonce := DeriveNonce(key)

	sealed, err := parseEnvelope(entry.id, envelope, c.config.strict)
	if err != nil {
		return "", c.fail(err)
	}

	aead, err := entry.newAEAD(key[:])
	if err != nil {
		return "", c.fail(newError(OpDecrypt, ErrAuthenticationFailed, err.Error(), err))
	}
	if aead.NonceSize() != len(nonce) {
		detail := fmt.Sprintf("nonce size %d, want %d", len(nonce), aead.NonceSize())
		return "", c.fail(newError(OpDecrypt, ErrAuthenticationFailed, detail, nil))
	}

	opened, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", c.fail(newError(OpDecrypt, ErrAuthenticationFailed, err.Error(), err))
	}

	plaintext, compressed, err := maybeDecompress(opened)
	if err != nil {
		return "", c.fail(err)
	}

	if !utf8.Valid(plaintext) {
		return "", c.fail(newError(OpDecrypt, ErrInvalidOutputText, invalidUTF8Detail(plaintext), nil))
	}

	c.config.logger.Debug("envelope opened",
		slog.String("algorithm", alg),
		slog.Int("sealed_bytes", len(sealed)),
		slog.Int("plaintext_bytes", len(plaintext)),
		slog.Bool("compressed", compressed),
	)
	return string(plaintext), nil
}

// fail logs err at warn level and returns it.
func (c *Codec) fail(err error) error {
	var e *Error
	if errors.As(err, &e) {
		c.config.logger.Warn("envelope operation failed",
			slog.String("op", string(e.Op)),
			slog.String("kind", e.Kind.Error()),
		)
	}
	return err
}

// invalidUTF8Detail names the offset of the first invalid byte.
func invalidUTF8Detail(b []byte) string {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return fmt.Sprintf("invalid utf-8 sequence at byte %d", i)
		}
		i += size
	}
	return "invalid utf-8"
}

// Encrypt seals plaintext with a default Codec.
func Encrypt(alg, password, plaintext string) (string, error) {
	return defaultCodec.Encrypt(alg, password, plaintext)
}

// Decrypt opens an envelope with a default Codec.
func Decrypt(alg, password, envelope string) (string, error) {
	return defaultCodec.Decrypt(alg, password, envelope)
}
