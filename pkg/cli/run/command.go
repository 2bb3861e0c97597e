// Package run implements the 'yala run' command.
package run

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/yala/pkg/cli/flag"
	"github.com/suzuki-shunsuke/yala/pkg/di"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gf *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE: logE,
		gf:   gf,
	}
	return r.Command()
}

type runner struct {
	logE *logrus.Entry
	gf   *flag.GlobalFlags
}

func (r *runner) Command() *cli.Command {
	flags := &di.Flags{GlobalFlags: r.gf}
	return &cli.Command{
		Name:      "run",
		Usage:     "Run linters against files and directories",
		ArgsUsage: "<path>...",
		Description: `Run linters in parallel and print their results sorted.
yala exits with a non-zero status code if any issue is found.

$ yala run src/ tests/

By default all supported linters run and linters which aren't installed are skipped.
If you select linters, yala reports the ones which aren't installed.

$ yala run -l pylint -l mypy src/
`,
		Action: func(ctx context.Context, c *cli.Command) error {
			flags.Args = c.Args().Slice()
			return di.Run(ctx, r.logE, flags, stdutil.New().Getenv) //nolint:wrapcheck
		},
		Flags: append(LinterFlags(flags),
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format (text, sarif)",
				Value:       "text",
				Sources:     cli.EnvVars("YALA_FORMAT"),
				Destination: &flags.Format,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "Use colors in the output (auto, always, never)",
				Value:       di.ColorAuto,
				Sources:     cli.EnvVars("YALA_COLOR"),
				Destination: &flags.Color,
			},
		),
	}
}

// LinterFlags returns the flags which override the configuration file.
// They are shared with 'yala dump-config'.
func LinterFlags(flags *di.Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "linter",
			Aliases:     []string{"l"},
			Usage:       "Linters to run. This replaces linters of the configuration file",
			Destination: &flags.Linters,
		},
		&cli.IntFlag{
			Name:        "jobs",
			Aliases:     []string{"j"},
			Usage:       "The number of linters run in parallel. By default the number of CPUs",
			Sources:     cli.EnvVars("YALA_JOBS"),
			Destination: &flags.Jobs,
		},
		&cli.StringFlag{
			Name:        "timeout",
			Usage:       "Timeout of each linter (e.g. 5m)",
			Destination: &flags.Timeout,
		},
	}
}

