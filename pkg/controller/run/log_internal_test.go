package run

import (
	"bytes"
	"strings"
	"testing"

	"github.com/suzuki-shunsuke/yala/pkg/linter"
)

func TestLogger_Output(t *testing.T) { //nolint:funlen
	t.Parallel()
	tests := []struct {
		name             string
		findings         []linter.Finding
		stdoutContains   []string
		stderrContains   []string
		stdoutNotContain []string
	}{
		{
			name:           "no finding",
			findings:       []linter.Finding{},
			stdoutContains: []string{":) No issues found."},
		},
		{
			name: "a finding",
			findings: []linter.Finding{
				{
					Linter:   "pycodestyle",
					File:     "src/a.py",
					Line:     3,
					Column:   1,
					Rule:     "E302",
					Severity: linter.SeverityError,
					Message:  "expected 2 blank lines, found 1",
				},
			},
			stdoutContains:   []string{"src/a.py:3:1", "E302", "expected 2 blank lines, found 1", "[pycodestyle]"},
			stderrContains:   []string{":( 1 issue found."},
			stdoutNotContain: []string{"No issues found"},
		},
		{
			name: "a diagnostic",
			findings: []linter.Finding{
				{Linter: "mypy", Severity: linter.SeverityError, Message: `Did you install "mypy"? Got exception: not found`},
				{Linter: "pyflakes", File: "a.py", Line: 1, Message: "'os' imported but unused"},
			},
			stdoutContains: []string{`Did you install "mypy"?`, "a.py:1", "'os' imported but unused"},
			stderrContains: []string{":( 2 issues found."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			NewLogger(stdout, stderr).Output(tt.findings)
			for _, s := range tt.stdoutContains {
				if !strings.Contains(stdout.String(), s) {
					t.Errorf("stdout doesn't contain %q: %s", s, stdout.String())
				}
			}
			for _, s := range tt.stdoutNotContain {
				if strings.Contains(stdout.String(), s) {
					t.Errorf("stdout contains %q: %s", s, stdout.String())
				}
			}
			for _, s := range tt.stderrContains {
				if !strings.Contains(stderr.String(), s) {
					t.Errorf("stderr doesn't contain %q: %s", s, stderr.String())
				}
			}
			if len(tt.findings) > 0 {
				if got := strings.Count(stdout.String(), "\n"); got != len(tt.findings) {
					t.Errorf("each finding must be printed on its own line: %q", stdout.String())
				}
			}
		})
	}
}

func Test_summary(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want string
	}{
		{n: 1, want: ":( 1 issue found."},
		{n: 2, want: ":( 2 issues found."},
		{n: 10, want: ":( 10 issues found."},
	}
	for _, tt := range tests {
		if got := summary(tt.n); got != tt.want {
			t.Errorf("summary(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
