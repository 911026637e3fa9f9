// Package main provides the crypt command line tool.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ai8future/crypt/internal/config"
)

func main() {
	cfg := config.Load()
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	cmd := &cli.Command{
		Name:     "crypt",
		Usage:    "Seal text into armored envelopes and open them again",
		Version:  "1.0.0",
		Commands: getCommands(cfg, logger),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
