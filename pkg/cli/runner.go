// Package cli defines yala's command line interface.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/suzuki-shunsuke/yala/pkg/cli/dumpconfig"
	"github.com/suzuki-shunsuke/yala/pkg/cli/flag"
	"github.com/suzuki-shunsuke/yala/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/yala/pkg/cli/run"
	"github.com/suzuki-shunsuke/yala/pkg/cli/version"
	"github.com/urfave/cli/v3"
)

// Run runs yala. `yala version` and `yala help-all` are added by urfave.Command.
func Run(ctx context.Context, logE *logrus.Entry, ldFlags *stdutil.LDFlags, args ...string) error {
	gf := &flag.GlobalFlags{}
	return urfave.Command(ldFlags, &cli.Command{ //nolint:wrapcheck
		Name:  "yala",
		Usage: "Run linters in parallel and aggregate their results. https://github.com/suzuki-shunsuke/yala",
		Flags: gf.Flags(),
		Commands: []*cli.Command{
			initcmd.New(logE, gf),
			run.New(logE, gf),
			dumpconfig.New(logE, gf),
			version.New(logE, gf, ldFlags.Version),
		},
	}).Run(ctx, args)
}
