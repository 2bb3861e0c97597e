package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/yala/pkg/cli"
	"github.com/suzuki-shunsuke/yala/pkg/controller/run"
	"github.com/suzuki-shunsuke/yala/pkg/log"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(version)
	if err := core(logE); err != nil {
		if errors.Is(err, run.ErrIssuesFound) {
			os.Exit(1)
		}
		logerr.WithError(logE, err).Fatal("yala failed")
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Run(ctx, logE, &stdutil.LDFlags{ //nolint:wrapcheck
		Version: version,
		Commit:  commit,
		Date:    date,
	}, os.Args...)
}
