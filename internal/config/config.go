// Package config provides CLI configuration through environment variables.
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	"github.com/ai8future/crypt"
)

// Config holds all CLI configuration.
type Config struct {
	// Algorithm is the algorithm used for new envelopes.
	Algorithm string
	// Password is the password used when no password file is given.
	Password string
	// NewPassword is the target password for reseal when no file is given.
	NewPassword string

	// CompressionEnabled enables zstd compression of large plaintexts.
	CompressionEnabled bool
	// CompressionThreshold is the minimum plaintext size in bytes before compression is attempted.
	CompressionThreshold int

	// StrictParsing rejects envelopes with blank or overlong body lines.
	StrictParsing bool

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		Algorithm:   env.GetString("CRYPT_ALGORITHM", string(crypt.DefaultAlgorithm)),
		Password:    env.GetString("CRYPT_PASSWORD", ""),
		NewPassword: env.GetString("CRYPT_NEW_PASSWORD", ""),

		CompressionEnabled:   env.GetBool("CRYPT_COMPRESSION", false),
		CompressionThreshold: env.GetInt("CRYPT_COMPRESSION_THRESHOLD", 1024),

		StrictParsing: env.GetBool("CRYPT_STRICT_PARSING", false),

		LogLevel: env.GetString("LOG_LEVEL", "info"),
	}
}

// CodecOptions converts the configuration into codec options. logger may be nil.
func (c *Config) CodecOptions(logger *slog.Logger) []crypt.Option {
	opts := []crypt.Option{crypt.WithCompressionThreshold(c.CompressionThreshold)}
	if logger != nil {
		opts = append(opts, crypt.WithLogger(logger))
	}
	if c.CompressionEnabled {
		opts = append(opts, crypt.WithCompression())
	}
	if c.StrictParsing {
		opts = append(opts, crypt.WithStrictParsing())
	}
	return opts
}

// Level maps LogLevel to a slog level. Unknown values fall back to info.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a JSON logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: c.Level(),
	})
	return slog.New(handler)
}

// loadDotEnv searches for a .env file from the current directory up to the
// root directory and loads the first one found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
