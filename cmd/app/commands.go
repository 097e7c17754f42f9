package main

import (
	"github.com/urfave/cli/v3"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getProtocolCommands()...)
	cmds = append(cmds, getKeyCommands()...)
	cmds = append(cmds, getSystemCommands(version)...)
	return cmds
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func locationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{
			Name:  "lat",
			Usage: "Latitude in degrees (omit to resolve from the public IP)",
		},
		&cli.FloatFlag{
			Name:  "lon",
			Usage: "Longitude in degrees (omit to resolve from the public IP)",
		},
	}
}
