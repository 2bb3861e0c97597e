package run

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/yala/pkg/linter"
	"golang.org/x/sync/errgroup"
)

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if err := c.validateTargets(); err != nil {
		return err
	}
	findings, err := c.Lint(ctx, logE)
	if err != nil {
		return err
	}
	return c.output(findings)
}

func (c *Controller) validateTargets() error {
	if len(c.param.Targets) == 0 {
		return ErrNoTarget
	}
	for _, target := range c.param.Targets {
		f, err := afero.Exists(c.fs, target)
		if err != nil {
			return fmt.Errorf("check if a target exists: %w", err)
		}
		if !f {
			return fmt.Errorf("target %s doesn't exist", target)
		}
	}
	return nil
}

func (c *Controller) jobs() int {
	if n := c.provider.Jobs(); n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Lint runs all active linters in parallel and returns their sorted findings.
// If a linter fails with anything but a missing executable, the other
// linters are cancelled and the error is returned without findings.
func (c *Controller) Lint(ctx context.Context, logE *logrus.Entry) ([]linter.Finding, error) {
	linters := c.provider.ActiveLinters()
	results := make([][]linter.Finding, len(linters))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.jobs())
	for i, l := range linters {
		name := l.Name()
		unit := newUnit(l, c.provider.LinterConfig(name), c.param.Targets, c.provider.IsUserChoice(name), c.executor)
		logE := logE.WithField("linter", name)
		eg.Go(func() error {
			findings, err := unit.Results(ctx, logE)
			if err != nil {
				return fmt.Errorf("run a linter: %w", err)
			}
			results[i] = findings
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	n := 0
	for _, r := range results {
		n += len(r)
	}
	findings := make([]linter.Finding, 0, n)
	for _, r := range results {
		findings = append(findings, r...)
	}
	linter.SortFindings(findings)
	logE.WithFields(logrus.Fields{
		"linters":  len(linters),
		"findings": len(findings),
	}).Debug("all linters finished")
	return findings, nil
}

func (c *Controller) output(findings []linter.Finding) error {
	switch c.param.Format {
	case "", FormatText:
		c.logger.Output(findings)
	case FormatSARIF:
		if err := c.outputSARIF(findings); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s", c.param.Format)
	}
	if len(findings) > 0 {
		return ErrIssuesFound
	}
	return nil
}
