// Package flag defines the flags shared by all subcommands.
package flag

import "github.com/urfave/cli/v3"

type GlobalFlags struct {
	LogLevel string
	Config   string
}

func (gf *GlobalFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level",
			Sources:     cli.EnvVars("YALA_LOG_LEVEL"),
			Destination: &gf.LogLevel,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "configuration file path",
			Sources:     cli.EnvVars("YALA_CONFIG"),
			Destination: &gf.Config,
		},
	}
}
