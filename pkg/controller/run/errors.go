package run

import (
	"errors"
	"strings"
)

var (
	ErrIssuesFound        = errors.New("issues are found")
	ErrNoTarget           = errors.New("no target path is given")
	ErrLinterNotInstalled = errors.New("linter is not installed")
	ErrLinterFailed       = errors.New("linter failed")
	ErrLinterTimeout      = errors.New("linter timed out")
)

// LinterError is returned when a linter can't be run.
// Kind is one of ErrLinterNotInstalled, ErrLinterFailed and ErrLinterTimeout.
type LinterError struct {
	Linter string
	Kind   error
	Err    error
	Stderr string
}

func (e *LinterError) Error() string {
	msg := e.Linter + ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += " (stderr: " + s + ")"
	}
	return msg
}

func (e *LinterError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
