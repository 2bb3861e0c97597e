package linter

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// SeverityFromString parses severity names used by the linters.
// Unknown values are treated as warnings.
func SeverityFromString(s string) Severity {
	switch strings.ToLower(s) {
	case "error", "err", "fatal", "critical":
		return SeverityError
	case "warning", "warn":
		return SeverityWarning
	case "info", "note", "convention", "refactor", "hint":
		return SeverityInfo
	default:
		return SeverityWarning
	}
}

// Finding is a single issue reported by a linter.
// A Finding without File is a diagnostic about the linter itself.
type Finding struct {
	Linter   string
	File     string
	Line     int
	Column   int
	Rule     string
	Severity Severity
	Message  string
}

// Location returns file[:line[:column]].
func (f Finding) Location() string {
	if f.Line <= 0 {
		return f.File
	}
	loc := f.File + ":" + strconv.Itoa(f.Line)
	if f.Column > 0 {
		loc += ":" + strconv.Itoa(f.Column)
	}
	return loc
}

func (f Finding) String() string {
	if f.File == "" {
		return f.Message
	}
	var b strings.Builder
	b.WriteString(f.Location())
	b.WriteString(": ")
	if f.Rule != "" {
		b.WriteString(f.Rule)
		b.WriteString(" ")
	}
	b.WriteString(f.Message)
	if f.Linter != "" {
		b.WriteString(" [")
		b.WriteString(f.Linter)
		b.WriteString("]")
	}
	return b.String()
}

// Compare orders findings by location first and then by message.
// Linter, rule and severity only break ties.
func Compare(a, b Finding) int {
	return cmp.Or(
		cmp.Compare(a.File, b.File),
		cmp.Compare(a.Line, b.Line),
		cmp.Compare(a.Column, b.Column),
		cmp.Compare(a.Message, b.Message),
		cmp.Compare(a.Linter, b.Linter),
		cmp.Compare(a.Rule, b.Rule),
		cmp.Compare(a.Severity, b.Severity),
	)
}

func SortFindings(findings []Finding) {
	slices.SortStableFunc(findings, Compare)
}
