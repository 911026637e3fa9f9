package crypt

import "log/slog"

// Option is a functional option for configuring a Codec.
type Option func(*config)

// WithLogger sets the structured logger. The default discards everything.
// Passwords and plaintext are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithCompression enables zstd compression of plaintext before sealing.
// Compressed envelopes can only be opened by this package; leave it off when
// envelopes are exchanged with other implementations.
func WithCompression() Option {
	return func(c *config) {
		c.compressionEnabled = true
	}
}

// WithCompressionThreshold sets the minimum plaintext size in bytes before
// compression is attempted. Default is 1024. Must be > 0.
// It has no effect unless WithCompression is also given.
func WithCompressionThreshold(bytes int) Option {
	return func(c *config) {
		c.compressionThreshold = bytes
	}
}

// WithStrictParsing rejects envelopes whose body contains blank lines or
// lines longer than LineWidth. By default such lines are concatenated like
// any other body line.
func WithStrictParsing() Option {
	return func(c *config) {
		c.strict = true
	}
}
