// Package version implements `yala version`.
// It shows the version of yala and of each linter executable.
package version

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/google/shlex"
	goversion "github.com/hashicorp/go-version"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/yala/pkg/controller/run"
	"github.com/suzuki-shunsuke/yala/pkg/linter"
	"golang.org/x/sync/errgroup"
)

const notInstalled = "not installed"

var versionPattern = regexp.MustCompile(`v?\d+(\.\d+)+\S*`)

type Controller struct {
	executor run.Executor
	linters  []linter.Linter
	stdout   io.Writer
}

func New(executor run.Executor, linters []linter.Linter, stdout io.Writer) *Controller {
	return &Controller{
		executor: executor,
		linters:  linters,
		stdout:   stdout,
	}
}

type Entry struct {
	Name    string
	Version string
}

// Version prints yala's version and then the version of each linter
// executable. A linter which isn't installed is shown as "not installed".
func (c *Controller) Version(ctx context.Context, logE *logrus.Entry, yalaVersion string) error {
	entries, err := c.Entries(ctx, logE)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "yala %s\n", yalaVersion)
	for _, e := range entries {
		fmt.Fprintf(c.stdout, "%s %s\n", e.Name, e.Version)
	}
	return nil
}

// Entries returns the versions of linter executables.
// Linters sharing an executable such as `radon cc` and `radon mi` are
// shown once.
func (c *Controller) Entries(ctx context.Context, logE *logrus.Entry) ([]*Entry, error) {
	var entries []*Entry
	seen := map[string]struct{}{}
	for _, l := range c.linters {
		args, err := shlex.Split(l.CommandWithOptions(linter.Options{}))
		if err != nil {
			return nil, fmt.Errorf("get the executable of %s: %w", l.Name(), err)
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("the command of %s is empty", l.Name())
		}
		if _, ok := seen[args[0]]; ok {
			continue
		}
		seen[args[0]] = struct{}{}
		entries = append(entries, &Entry{Name: args[0]})
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, e := range entries {
		eg.Go(func() error {
			v, err := c.get(ctx, e.Name)
			if err != nil {
				logerr.WithError(logE, err).WithField("linter", e.Name).Warn("get a linter version")
				v = "unknown"
			}
			e.Version = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entries, nil
}

func (c *Controller) get(ctx context.Context, executable string) (string, error) {
	result, err := c.executor.Exec(ctx, []string{executable, "--version"})
	if err != nil {
		if run.IsNotInstalled(err) {
			return notInstalled, nil
		}
		return "", fmt.Errorf("execute %s --version: %w", executable, err)
	}
	return parseVersion(string(result.Stdout) + "\n" + string(result.Stderr)), nil
}

// parseVersion extracts the first version-like word from the output.
// If nothing looks like a version, the first non-empty line is returned.
func parseVersion(output string) string {
	for line := range strings.Lines(output) {
		s := versionPattern.FindString(line)
		if s == "" {
			continue
		}
		v, err := goversion.NewVersion(s)
		if err != nil {
			continue
		}
		return v.String()
	}
	for line := range strings.Lines(output) {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return "unknown"
}
