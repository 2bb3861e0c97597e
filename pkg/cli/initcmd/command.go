// Package initcmd implements the 'yala init' command.
package initcmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/yala/pkg/cli/flag"
	"github.com/suzuki-shunsuke/yala/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/yala/pkg/log"
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
	return &cli.Command{
		Name:  "init",
		Usage: "Create .yala.yaml if it doesn't exist",
		Description: `Create .yala.yaml if it doesn't exist

$ yala init

You can also pass configuration file path.

e.g.

$ yala init .github/yala.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	if err := log.SetLevel(r.gf.LogLevel, r.logE); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.gf.Config
	}
	return initcmd.New(afero.NewOsFs()).Init(r.logE, configFilePath) //nolint:wrapcheck
}
