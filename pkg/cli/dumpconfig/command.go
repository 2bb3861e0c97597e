// Package dumpconfig implements the 'yala dump-config' command.
package dumpconfig

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/yala/pkg/cli/flag"
	"github.com/suzuki-shunsuke/yala/pkg/cli/run"
	"github.com/suzuki-shunsuke/yala/pkg/di"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gf *flag.GlobalFlags) *cli.Command {
	flags := &di.Flags{GlobalFlags: gf}
	return &cli.Command{
		Name:  "dump-config",
		Usage: "Show the effective configuration of all linters",
		Description: `Show the effective configuration of all linters as YAML.
The default settings of linters are merged with the configuration file and command line flags.

$ yala dump-config
`,
		Flags: run.LinterFlags(flags),
		Action: func(_ context.Context, _ *cli.Command) error {
			return di.DumpConfig(logE, flags, os.Stdout) //nolint:wrapcheck
		},
	}
}
