package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/pinkoot/AI-Assistant/cmd/app/commands"
	"github.com/pinkoot/AI-Assistant/internal/app"
	cipherService "github.com/pinkoot/AI-Assistant/internal/cipher/service"
	"github.com/pinkoot/AI-Assistant/internal/config"
)

func getKeyCommands() []*cli.Command {
	textFlag := func() *cli.StringFlag {
		return &cli.StringFlag{
			Name:    "text",
			Aliases: []string{"t"},
			Value:   "-",
			Usage:   "Text to transform; - reads standard input",
		}
	}

	return []*cli.Command{
		{
			Name:  "encode",
			Usage: "Encrypt text with the protocol key",
			Flags: []cli.Flag{textFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cipher, err := loadCipher(ctx)
				if err != nil {
					return err
				}
				stdio := commands.DefaultIO()
				text, err := commands.ResolveText(cmd.String("text"), stdio.Reader)
				if err != nil {
					return err
				}
				return commands.RunEncode(cipher, stdio.Writer, text, cmd.String("format"))
			},
		},
		{
			Name:  "decode",
			Usage: "Decrypt text with the protocol key",
			Flags: []cli.Flag{textFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cipher, err := loadCipher(ctx)
				if err != nil {
					return err
				}
				stdio := commands.DefaultIO()
				text, err := commands.ResolveText(cmd.String("text"), stdio.Reader)
				if err != nil {
					return err
				}
				return commands.RunDecode(cipher, stdio.Writer, text, cmd.String("format"))
			},
		},
		{
			Name:  "sign",
			Usage: "Encrypt request parameters and print their signature",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:     "param",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Parameter as key=value, repeatable; order is preserved",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				key, err := container.Key(ctx)
				if err != nil {
					return err
				}

				return commands.RunSign(
					container.Codec(ctx),
					container.Signer(),
					key,
					commands.DefaultIO().Writer,
					cmd.StringSlice("param"),
					cmd.String("format"),
				)
			},
		},
	}
}

func loadCipher(ctx context.Context) (cipherService.Cipher, error) {
	container := app.NewContainer(config.Load())
	defer func() { _ = container.Shutdown(ctx) }()

	key, err := container.Key(ctx)
	if err != nil {
		return nil, err
	}
	return cipherService.NewVigenereCipher(key)
}
