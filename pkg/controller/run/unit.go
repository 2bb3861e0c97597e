package run

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/google/shlex"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/yala/pkg/linter"
)

// Unit runs one linter against the targets.
// Its fields are set once by newUnit and never change, so units can run
// concurrently without sharing any mutable state.
type Unit struct {
	linter     linter.Linter
	opts       linter.Options
	targets    []string
	userChoice bool
	executor   Executor
}

func newUnit(l linter.Linter, opts linter.Options, targets []string, userChoice bool, executor Executor) *Unit {
	return &Unit{
		linter:     l,
		opts:       opts,
		targets:    slices.Clone(targets),
		userChoice: userChoice,
		executor:   executor,
	}
}

// Results runs the linter and returns its findings.
// If the linter isn't installed, the result is a single diagnostic finding
// when the user selected the linter, and empty otherwise.
func (u *Unit) Results(ctx context.Context, logE *logrus.Entry) ([]linter.Finding, error) {
	findings, err := u.lint(ctx, logE)
	if err == nil {
		return findings, nil
	}
	if !errors.Is(err, ErrLinterNotInstalled) {
		return nil, err
	}
	if u.userChoice {
		return []linter.Finding{notInstalled(u.linter.Name(), err)}, nil
	}
	logE.WithError(err).Debug("skip a linter because it isn't installed")
	return []linter.Finding{}, nil
}

func notInstalled(name string, err error) linter.Finding {
	cause := err
	var lErr *LinterError
	if errors.As(err, &lErr) && lErr.Err != nil {
		cause = lErr.Err
	}
	return linter.Finding{
		Linter:   name,
		Severity: linter.SeverityError,
		Message:  fmt.Sprintf(`Did you install "%s"? Got exception: %v`, name, cause),
	}
}

// command returns the command line split by the shell rules.
// Targets are quoted so that a path containing spaces stays one field.
func (u *Unit) command() ([]string, error) {
	quoted := make([]string, len(u.targets))
	for i, target := range u.targets {
		quoted[i] = shellescape.Quote(target)
	}
	s := u.linter.CommandWithOptions(u.opts)
	if len(quoted) > 0 {
		s += " " + strings.Join(quoted, " ")
	}
	args, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("split a command by shell rules: %w", err)
	}
	if len(args) == 0 {
		return nil, errors.New("command is empty")
	}
	return args, nil
}

func (u *Unit) lint(ctx context.Context, logE *logrus.Entry) ([]linter.Finding, error) {
	name := u.linter.Name()
	args, err := u.command()
	if err != nil {
		return nil, &LinterError{Linter: name, Kind: ErrLinterFailed, Err: err}
	}
	if u.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.opts.Timeout)
		defer cancel()
	}

	ctx, span := startUnitSpan(ctx, name)
	defer span.End()
	start := time.Now()

	result, err := u.executor.Exec(ctx, args)
	if err != nil {
		lErr := classify(ctx, name, err, result)
		recordUnitMetrics(ctx, name, time.Since(start), 0, lErr)
		setUnitSpanError(span, lErr)
		return nil, lErr
	}
	logE = logE.WithFields(logrus.Fields{
		"command":   strings.Join(args, " "),
		"exit_code": result.ExitCode,
		"duration":  time.Since(start),
	})
	if len(result.Stderr) > 0 {
		logE = logE.WithField("stderr", string(result.Stderr))
	}
	logE.Debug("finished a linter")

	lines := splitLines(result.Stdout)
	if r, ok := u.linter.(linter.StderrReader); ok && r.ReadsStderr() {
		lines = append(lines, splitLines(result.Stderr)...)
	}
	findings := u.linter.Parse(lines)
	recordUnitMetrics(ctx, name, time.Since(start), len(findings), nil)
	return findings, nil
}

func classify(ctx context.Context, name string, err error, result *ExecResult) *LinterError {
	lErr := &LinterError{Linter: name, Kind: ErrLinterFailed, Err: err}
	if result != nil {
		lErr.Stderr = string(result.Stderr)
	}
	switch {
	case IsNotInstalled(err):
		lErr.Kind = ErrLinterNotInstalled
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		lErr.Kind = ErrLinterTimeout
	case ctx.Err() != nil:
		lErr.Err = ctx.Err()
	}
	return lErr
}

func splitLines(output []byte) []string {
	lines := []string{}
	for line := range strings.SplitSeq(string(output), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
