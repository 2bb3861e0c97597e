// Package linter defines the adapters for the external tools yala runs.
// Every adapter declares the tool's name, how to build its command line from
// the effective options, and how to turn the tool's stdout into findings.
// The set of adapters is fixed and registered in one table (see All).
package linter

import (
	"strconv"
	"time"
)

// Linter is implemented by every adapter.
// Parse must not fail: lines it doesn't understand yield no findings.
type Linter interface {
	Name() string
	Defaults() Options
	CommandWithOptions(opts Options) string
	Parse(lines []string) []Finding
}

// Options is the effective configuration of a linter for one run.
// It is copied into each invocation and never mutated afterwards.
type Options struct {
	// Args replaces the adapter's default arguments.
	Args string
	// Timeout bounds one execution. Zero means no timeout.
	Timeout time.Duration
}

// StderrReader is implemented by linters which report issues on stderr.
// Their stderr lines are parsed after the stdout lines.
type StderrReader interface {
	ReadsStderr() bool
}

type base struct {
	name    string
	command string
	args    string
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Defaults() Options {
	return Options{Args: b.args}
}

func (b *base) CommandWithOptions(opts Options) string {
	if opts.Args == "" {
		return b.command
	}
	return b.command + " " + opts.Args
}

var registry = []Linter{ //nolint:gochecknoglobals
	newIsort(),
	newMypy(),
	newPycodestyle(),
	newPydocstyle(),
	newPyflakes(),
	newPylint(),
	newRadonCC(),
	newRadonMI(),
}

// All returns every registered linter in a stable order.
func All() []Linter {
	linters := make([]Linter, len(registry))
	copy(linters, registry)
	return linters
}

// Names returns the names of all registered linters.
func Names() []string {
	names := make([]string, len(registry))
	for i, l := range registry {
		names[i] = l.Name()
	}
	return names
}

// Get returns the linter named name, or nil if it isn't registered.
func Get(name string) Linter {
	for _, l := range registry {
		if l.Name() == name {
			return l
		}
	}
	return nil
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
