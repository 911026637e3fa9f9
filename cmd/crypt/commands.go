package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/ai8future/crypt"
	"github.com/ai8future/crypt/cmd/crypt/commands"
	"github.com/ai8future/crypt/internal/config"
)

func getCommands(cfg *config.Config, logger *slog.Logger) []*cli.Command {
	newCodec := func() (*crypt.Codec, error) {
		return crypt.New(cfg.CodecOptions(logger)...)
	}

	ioFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.StringFlag{
				Name:    "in",
				Aliases: []string{"i"},
				Usage:   "Input file (default stdin)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output file (default stdout)",
			},
			&cli.StringFlag{
				Name:    "password-file",
				Aliases: []string{"p"},
				Usage:   "File whose first line is the password (default CRYPT_PASSWORD, then prompt)",
			},
		}
	}

	return []*cli.Command{
		{
			Name:  "algorithms",
			Usage: "List the registered algorithms",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunAlgorithms(commands.DefaultIO())
			},
		},
		{
			Name:  "header",
			Usage: "Print the header line of an algorithm",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   cfg.Algorithm,
					Usage:   "Algorithm identifier",
				},
				&cli.StringFlag{
					Name:    "kind",
					Aliases: []string{"k"},
					Value:   "prefix",
					Usage:   "Header kind (prefix or suffix)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunHeader(commands.DefaultIO(), cmd.String("algorithm"), cmd.String("kind"))
			},
		},
		{
			Name:  "encrypt",
			Usage: "Seal text into an envelope",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   cfg.Algorithm,
					Usage:   "Algorithm identifier",
				},
			}, ioFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				codec, err := newCodec()
				if err != nil {
					return err
				}
				return commands.RunEncrypt(codec, logger, commands.DefaultIO(), commands.EncryptParams{
					Algorithm: cmd.String("algorithm"),
					Password:  passwordSource(cmd.String("password-file"), cfg.Password, "Password"),
					In:        cmd.String("in"),
					Out:       cmd.String("out"),
				})
			},
		},
		{
			Name:  "decrypt",
			Usage: "Open an envelope",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Usage:   "Algorithm identifier (default detected from the header)",
				},
			}, ioFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				codec, err := newCodec()
				if err != nil {
					return err
				}
				return commands.RunDecrypt(codec, logger, commands.DefaultIO(), commands.DecryptParams{
					Algorithm: cmd.String("algorithm"),
					Password:  passwordSource(cmd.String("password-file"), cfg.Password, "Password"),
					In:        cmd.String("in"),
					Out:       cmd.String("out"),
				})
			},
		},
		{
			Name:  "reseal",
			Usage: "Re-encrypt an envelope under a new algorithm and password",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "new-algorithm",
					Aliases: []string{"new-alg"},
					Value:   cfg.Algorithm,
					Usage:   "Target algorithm identifier",
				},
				&cli.StringFlag{
					Name:  "new-password-file",
					Usage: "File whose first line is the new password (default CRYPT_NEW_PASSWORD, then prompt)",
				},
			}, ioFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				codec, err := newCodec()
				if err != nil {
					return err
				}
				return commands.RunReseal(codec, logger, commands.DefaultIO(), commands.ResealParams{
					NewAlgorithm: cmd.String("new-algorithm"),
					Password:     passwordSource(cmd.String("password-file"), cfg.Password, "Current password"),
					NewPassword:  passwordSource(cmd.String("new-password-file"), cfg.NewPassword, "New password"),
					In:           cmd.String("in"),
					Out:          cmd.String("out"),
				})
			},
		},
		{
			Name:  "password",
			Usage: "Generate a random password",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "min",
					Value: 15,
					Usage: "Minimum length",
				},
				&cli.IntFlag{
					Name:  "max",
					Value: 31,
					Usage: "Maximum length",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunPassword(commands.DefaultIO(), int(cmd.Int("min")), int(cmd.Int("max")))
			},
		},
	}
}

func passwordSource(file, env, label string) commands.PasswordSource {
	return commands.PasswordSource{File: file, Env: env, Label: label}
}
