package run

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/suzuki-shunsuke/yala/pkg/linter"
)

type colorFunc func(a ...any) string

// Logger prints findings in the text format.
type Logger struct {
	stdout io.Writer
	stderr io.Writer
	red    colorFunc
	green  colorFunc
	yellow colorFunc
	bold   colorFunc
}

func NewLogger(stdout, stderr io.Writer) *Logger {
	return &Logger{
		stdout: stdout,
		stderr: stderr,
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		bold:   color.New(color.Bold).SprintFunc(),
	}
}

// Output prints each finding on stdout.
// The summary goes to stderr if there are issues, otherwise to stdout.
func (l *Logger) Output(findings []linter.Finding) {
	if len(findings) == 0 {
		fmt.Fprintln(l.stdout, l.green(":) No issues found."))
		return
	}
	for _, f := range findings {
		fmt.Fprintln(l.stdout, l.format(f))
	}
	fmt.Fprintf(l.stderr, "\n%s\n", l.red(summary(len(findings))))
}

func summary(n int) string {
	issue := "issues"
	if n == 1 {
		issue = "issue"
	}
	return fmt.Sprintf(":( %d %s found.", n, issue)
}

func (l *Logger) format(f linter.Finding) string {
	if f.File == "" {
		return l.red(f.String())
	}
	msg := f.Message
	if f.Rule != "" {
		msg = l.severity(f.Severity)(f.Rule) + " " + msg
	}
	s := l.bold(f.Location()) + ": " + msg
	if f.Linter != "" {
		s += " [" + f.Linter + "]"
	}
	return s
}

func (l *Logger) severity(s linter.Severity) colorFunc {
	switch s {
	case linter.SeverityError:
		return l.red
	case linter.SeverityWarning:
		return l.yellow
	default:
		return fmt.Sprint
	}
}
