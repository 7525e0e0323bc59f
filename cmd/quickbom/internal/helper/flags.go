// Package helper provides helper functions for the quickbom CLI commands.
package helper

import (
	"context"
	"strings"

	"github.com/quickbom/quickbom/internal/cmdlogger"
	"github.com/urfave/cli/v3"
)

// BuildCommonFlags returns the flags shared by every quickbom command
func BuildCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "config",
			Usage:     "set/override config file",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:  "verbosity",
			Usage: "specify the level of information that should be provided during runtime; value can be: " + strings.Join(cmdlogger.Levels(), ", "),
			Value: "info",
			Action: func(_ context.Context, _ *cli.Command, s string) error {
				lvl, err := cmdlogger.ParseLevel(s)

				if err != nil {
					return err
				}

				cmdlogger.SetLevel(lvl)

				return nil
			},
		},
	}
}
