// Package run implements `yala run`.
// It runs every active linter as an isolated subprocess on a bounded worker
// pool, converts each linter's output into findings, merges and sorts them,
// and reports the result. Only a missing linter executable is tolerated;
// any other execution failure aborts the whole run.
package run

import (
	"io"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/yala/pkg/linter"
)

type Controller struct {
	fs       afero.Fs
	provider ConfigProvider
	executor Executor
	param    *ParamRun
	logger   *Logger
}

// ConfigProvider resolves the linters to run and their effective options.
type ConfigProvider interface {
	LinterConfig(name string) linter.Options
	ActiveLinters() []linter.Linter
	IsUserChoice(name string) bool
	Jobs() int
}

type ParamRun struct {
	Targets []string
	Format  string
	Stdout  io.Writer
	Stderr  io.Writer
}

const (
	FormatText  = "text"
	FormatSARIF = "sarif"
)

func New(fs afero.Fs, provider ConfigProvider, executor Executor, param *ParamRun) *Controller {
	return &Controller{
		fs:       fs,
		provider: provider,
		executor: executor,
		param:    param,
		logger:   NewLogger(param.Stdout, param.Stderr),
	}
}
