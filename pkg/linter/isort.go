package linter

import "regexp"

type isort struct {
	base
}

func newIsort() *isort {
	return &isort{base: base{name: "isort", command: "isort", args: "--check-only"}}
}

// isort --check-only reports unsorted files on stderr.
func (p *isort) ReadsStderr() bool {
	return true
}

var isortPattern = regexp.MustCompile(`^ERROR: (.+?) (Imports are incorrectly sorted.*)$`)

func (p *isort) Parse(lines []string) []Finding {
	findings := []Finding{}
	for _, line := range lines {
		m := isortPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		findings = append(findings, Finding{
			Linter:   p.name,
			File:     m[1],
			Severity: SeverityWarning,
			Message:  m[2],
		})
	}
	return findings
}
