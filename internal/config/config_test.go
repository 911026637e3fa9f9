package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai8future/crypt"
)

// chdirTemp moves into an empty directory so no stray .env is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "crypt-aes-256-gcm", cfg.Algorithm)
				assert.Empty(t, cfg.Password)
				assert.Empty(t, cfg.NewPassword)
				assert.False(t, cfg.CompressionEnabled)
				assert.Equal(t, 1024, cfg.CompressionThreshold)
				assert.False(t, cfg.StrictParsing)
				assert.Equal(t, "info", cfg.LogLevel)
			},
		},
		{
			name: "load custom codec configuration",
			envVars: map[string]string{
				"CRYPT_ALGORITHM":             "crypt-chacha20-poly1305",
				"CRYPT_COMPRESSION":           "true",
				"CRYPT_COMPRESSION_THRESHOLD": "64",
				"CRYPT_STRICT_PARSING":        "true",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "crypt-chacha20-poly1305", cfg.Algorithm)
				assert.True(t, cfg.CompressionEnabled)
				assert.Equal(t, 64, cfg.CompressionThreshold)
				assert.True(t, cfg.StrictParsing)
			},
		},
		{
			name: "load passwords",
			envVars: map[string]string{
				"CRYPT_PASSWORD":     "old-secret",
				"CRYPT_NEW_PASSWORD": "new-secret",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "old-secret", cfg.Password)
				assert.Equal(t, "new-secret", cfg.NewPassword)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, slog.LevelDebug, cfg.Level())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			for _, key := range []string{
				"CRYPT_ALGORITHM", "CRYPT_PASSWORD", "CRYPT_NEW_PASSWORD",
				"CRYPT_COMPRESSION", "CRYPT_COMPRESSION_THRESHOLD",
				"CRYPT_STRICT_PARSING", "LOG_LEVEL",
			} {
				t.Setenv(key, "")
				require.NoError(t, os.Unsetenv(key))
			}
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			tt.validate(t, Load())
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CRYPT_ALGORITHM", "")
	require.NoError(t, os.Unsetenv("CRYPT_ALGORITHM"))

	content := []byte("CRYPT_ALGORITHM=crypt-aes-256-gcm-siv\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), content, 0o600))

	sub := filepath.Join(dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	t.Chdir(sub)

	cfg := Load()
	assert.Equal(t, "crypt-aes-256-gcm-siv", cfg.Algorithm)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.level}
			assert.Equal(t, tt.want, cfg.Level())
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "warn"}
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown", slog.String("key", "value"))
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestCodecOptions(t *testing.T) {
	cfg := &Config{
		CompressionEnabled:   true,
		CompressionThreshold: 16,
		StrictParsing:        true,
	}

	codec, err := crypt.New(cfg.CodecOptions(nil)...)
	require.NoError(t, err)

	plaintext := ""
	for i := 0; i < 50; i++ {
		plaintext += "repeat "
	}
	envelope, err := codec.Encrypt("crypt-aes-256-gcm", "secret", plaintext)
	require.NoError(t, err)

	plain, err := crypt.Encrypt("crypt-aes-256-gcm", "secret", plaintext)
	require.NoError(t, err)
	assert.Less(t, len(envelope), len(plain))

	opened, err := codec.Decrypt("crypt-aes-256-gcm", "secret", envelope)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestCodecOptions_InvalidThreshold(t *testing.T) {
	cfg := &Config{CompressionThreshold: 0}

	_, err := crypt.New(cfg.CodecOptions(slog.New(slog.DiscardHandler))...)
	require.ErrorIs(t, err, crypt.ErrInvalidOption)
}
