package run

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/suzuki-shunsuke/yala/pkg/linter"
)

// fakeLinter reports each output line as a finding.
type fakeLinter struct {
	name    string
	command string
}

func (l *fakeLinter) Name() string {
	return l.name
}

func (l *fakeLinter) Defaults() linter.Options {
	return linter.Options{}
}

func (l *fakeLinter) CommandWithOptions(opts linter.Options) string {
	if opts.Args == "" {
		return l.command
	}
	return l.command + " " + opts.Args
}

func (l *fakeLinter) Parse(lines []string) []linter.Finding {
	findings := make([]linter.Finding, len(lines))
	for i, line := range lines {
		findings[i] = linter.Finding{Linter: l.name, Message: line}
	}
	return findings
}

type fakeResponse struct {
	stdout string
	stderr string
	err    error
	wait   bool
}

type fakeExecutor struct {
	responses map[string]*fakeResponse
	mu        sync.Mutex
	calls     [][]string
}

func (e *fakeExecutor) Exec(ctx context.Context, args []string) (*ExecResult, error) {
	e.mu.Lock()
	e.calls = append(e.calls, args)
	e.mu.Unlock()
	resp, ok := e.responses[args[0]]
	if !ok {
		return nil, errors.New("unexpected command: " + strings.Join(args, " "))
	}
	if resp.wait {
		<-ctx.Done()
		return &ExecResult{}, ctx.Err()
	}
	if resp.err != nil {
		return &ExecResult{}, resp.err
	}
	return &ExecResult{Stdout: []byte(resp.stdout), Stderr: []byte(resp.stderr)}, nil
}

type fakeProvider struct {
	linters []linter.Linter
	user    map[string]bool
	opts    map[string]linter.Options
	jobs    int
}

func (p *fakeProvider) LinterConfig(name string) linter.Options {
	return p.opts[name]
}

func (p *fakeProvider) ActiveLinters() []linter.Linter {
	return p.linters
}

func (p *fakeProvider) IsUserChoice(name string) bool {
	return p.user[name]
}

func (p *fakeProvider) Jobs() int {
	return p.jobs
}
