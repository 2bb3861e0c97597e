// Package di wires command line flags, the configuration file and the
// controllers together.
package di

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/yala/pkg/config"
	"github.com/suzuki-shunsuke/yala/pkg/controller/dumpconfig"
	"github.com/suzuki-shunsuke/yala/pkg/controller/run"
	"github.com/suzuki-shunsuke/yala/pkg/log"
)

// Run lints the targets given as arguments.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags, getEnv stdutil.Getenv) error {
	if err := log.SetLevel(flags.LogLevel, logE); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}
	noColor, err := isNoColor(flags.Color, getEnv, isTerminal(os.Stdout))
	if err != nil {
		return err
	}
	color.NoColor = noColor
	if err := validateFormat(flags.Format); err != nil {
		return err
	}

	fs := afero.NewOsFs()
	cfg, err := readConfig(fs, flags)
	if err != nil {
		return err
	}
	ctrl := run.New(fs, config.NewProvider(cfg), run.NewExecutor(), &run.ParamRun{
		Targets: flags.Args,
		Format:  flags.Format,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

// DumpConfig outputs the effective configuration of every linter.
func DumpConfig(logE *logrus.Entry, flags *Flags, stdout io.Writer) error {
	if err := log.SetLevel(flags.LogLevel, logE); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}
	cfg, err := readConfig(afero.NewOsFs(), flags)
	if err != nil {
		return err
	}
	return dumpconfig.New(config.NewProvider(cfg), stdout).DumpConfig() //nolint:wrapcheck
}

func readConfig(fs afero.Fs, flags *Flags) (*config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	configPath, err := cfgFinder.Find(flags.Config)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, configPath); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}
	applyFlags(cfg, flags)
	if err := cfg.Init(); err != nil {
		return nil, fmt.Errorf("validate command line options: %w", err)
	}
	return cfg, nil
}

// applyFlags overrides the configuration file with command line flags.
// --linter replaces linters of the configuration file.
func applyFlags(cfg *config.Config, flags *Flags) {
	if len(flags.Linters) > 0 {
		cfg.Linters = flags.Linters
	}
	if flags.Jobs != 0 {
		cfg.Jobs = flags.Jobs
	}
	if flags.Timeout != "" {
		cfg.Timeout = flags.Timeout
	}
}

func validateFormat(format string) error {
	switch format {
	case "", run.FormatText, run.FormatSARIF:
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: %s, %s)", format, run.FormatText, run.FormatSARIF)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// isNoColor decides whether colors are disabled.
// In auto mode colors are enabled only if stdout is a terminal and NO_COLOR isn't set.
func isNoColor(mode string, getEnv stdutil.Getenv, terminal bool) (bool, error) {
	switch mode {
	case ColorAlways:
		return false, nil
	case ColorNever:
		return true, nil
	case "", ColorAuto:
		return getEnv("NO_COLOR") != "" || !terminal, nil
	default:
		return false, fmt.Errorf("invalid color mode: %s (supported: %s, %s, %s)", mode, ColorAuto, ColorAlways, ColorNever)
	}
}
