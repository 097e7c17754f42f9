package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/pinkoot/AI-Assistant/cmd/app/commands"
	"github.com/pinkoot/AI-Assistant/internal/app"
	"github.com/pinkoot/AI-Assistant/internal/config"
	requestLogUseCase "github.com/pinkoot/AI-Assistant/internal/requestlog/usecase"
)

var errRequestLogDisabled = errors.New("request log is disabled (REQUEST_LOG_ENABLED=false)")

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "serve",
			Usage: "Start the loopback mirror server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run request journal database migrations",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			},
		},
		{
			Name:  "request-logs",
			Usage: "Inspect and prune the request journal",
			Commands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List journal entries, newest first",
					Flags: []cli.Flag{
						&cli.IntFlag{
							Name:  "offset",
							Value: 0,
							Usage: "Number of entries to skip",
						},
						&cli.IntFlag{
							Name:  "limit",
							Value: 50,
							Usage: "Maximum number of entries (1-100)",
						},
						formatFlag(),
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withRequestLogs(ctx, func(container *app.Container, useCase requestLogUseCase.RequestLogUseCase) error {
							return commands.RunListRequestLogs(
								ctx,
								useCase,
								commands.DefaultIO().Writer,
								int(cmd.Int("offset")),
								int(cmd.Int("limit")),
								cmd.String("format"),
							)
						})
					},
				},
				{
					Name:  "clean",
					Usage: "Delete journal entries older than specified days",
					Flags: []cli.Flag{
						&cli.IntFlag{
							Name:     "days",
							Aliases:  []string{"d"},
							Required: true,
							Usage:    "Delete entries older than this many days",
						},
						&cli.BoolFlag{
							Name:    "dry-run",
							Aliases: []string{"n"},
							Value:   false,
							Usage:   "Show how many entries would be deleted without deleting",
						},
						formatFlag(),
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withRequestLogs(ctx, func(container *app.Container, useCase requestLogUseCase.RequestLogUseCase) error {
							return commands.RunCleanRequestLogs(
								ctx,
								useCase,
								container.Logger(),
								commands.DefaultIO().Writer,
								int(cmd.Int("days")),
								cmd.Bool("dry-run"),
								cmd.String("format"),
							)
						})
					},
				},
			},
		},
	}
}

func withRequestLogs(
	ctx context.Context,
	fn func(*app.Container, requestLogUseCase.RequestLogUseCase) error,
) error {
	container := app.NewContainer(config.Load())
	defer func() { _ = container.Shutdown(ctx) }()

	useCase, err := container.RequestLogUseCase()
	if err != nil {
		return err
	}
	if useCase == nil {
		return errRequestLogDisabled
	}
	return fn(container, useCase)
}
