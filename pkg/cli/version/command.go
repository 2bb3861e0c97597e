// Package version implements the 'yala linter-versions' command.
package version

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/yala/pkg/cli/flag"
	"github.com/suzuki-shunsuke/yala/pkg/controller/run"
	"github.com/suzuki-shunsuke/yala/pkg/controller/version"
	"github.com/suzuki-shunsuke/yala/pkg/linter"
	"github.com/suzuki-shunsuke/yala/pkg/log"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gf *flag.GlobalFlags, yalaVersion string) *cli.Command {
	return &cli.Command{
		Name:  "linter-versions",
		Usage: "Show the versions of yala and linters",
		Description: `Run each linter with --version and show its version.
Linters which aren't installed are shown as "not installed".

$ yala linter-versions
`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			if err := log.SetLevel(gf.LogLevel, logE); err != nil {
				return fmt.Errorf("set log level: %w", err)
			}
			ctrl := version.New(run.NewExecutor(), linter.All(), os.Stdout)
			return ctrl.Version(ctx, logE, yalaVersion) //nolint:wrapcheck
		},
	}
}
