package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/pinkoot/AI-Assistant/cmd/app/commands"
	"github.com/pinkoot/AI-Assistant/internal/app"
	"github.com/pinkoot/AI-Assistant/internal/config"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
	"github.com/pinkoot/AI-Assistant/internal/render"
)

func getProtocolCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "weather",
			Usage: "Show the weather for a city, or for the current location when --city is omitted",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "city",
					Aliases: []string{"c"},
					Usage:   "City name (manual mode)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runAction(ctx, cmd, commands.WeatherRequest(cmd.String("city")))
			},
		},
		{
			Name:  "search",
			Usage: "Search products, food, the web, or places",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "kind",
					Aliases: []string{"k"},
					Value:   "web",
					Usage:   "Search kind: products, food, web, places, exact",
				},
				&cli.StringFlag{
					Name:     "query",
					Aliases:  []string{"q"},
					Required: true,
					Usage:    "Search text",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				req, err := commands.SearchRequest(cmd.String("kind"), cmd.String("query"))
				if err != nil {
					return err
				}
				return runAction(ctx, cmd, req)
			},
		},
		{
			Name:  "places",
			Usage: "Find restaurants, hotels, or places nearby",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "kind",
					Aliases: []string{"k"},
					Value:   "restaurants",
					Usage:   "Place kind: restaurants, hotels, places",
				},
				&cli.StringFlag{
					Name:    "query",
					Aliases: []string{"q"},
					Usage:   "What to look for (kind 'places' only)",
				},
				formatFlag(),
			}, locationFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				req, err := commands.PlacesRequest(cmd.String("kind"), cmd.String("query"), location(cmd))
				if err != nil {
					return err
				}
				return runAction(ctx, cmd, req)
			},
		},
		{
			Name:  "address",
			Usage: "Resolve the street address of a location",
			Flags: append([]cli.Flag{formatFlag()}, locationFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runAction(ctx, cmd, commands.AddressRequest(location(cmd)))
			},
		},
	}
}

func location(cmd *cli.Command) commands.Location {
	return commands.Location{
		Set:       cmd.IsSet("lat") || cmd.IsSet("lon"),
		Latitude:  cmd.Float("lat"),
		Longitude: cmd.Float("lon"),
	}
}

func runAction(ctx context.Context, cmd *cli.Command, req *protocolDomain.Request) error {
	format, err := render.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	container := app.NewContainer(config.Load())
	defer func() { _ = container.Shutdown(ctx) }()

	io := commands.DefaultIO()
	pipeline, err := container.NewPipeline(ctx, render.NewRenderer(format, io.Writer, io.Error))
	if err != nil {
		return err
	}

	return commands.RunAction(ctx, pipeline, container.Logger(), req)
}
