package linter

import "regexp"

type pyflakes struct {
	base
}

func newPyflakes() *pyflakes {
	return &pyflakes{base: base{name: "pyflakes", command: "pyflakes"}}
}

// Older releases omit the column.
var pyflakesPattern = regexp.MustCompile(`^(.+?):(\d+):(?:(\d+):?)? (.*)$`)

func (p *pyflakes) Parse(lines []string) []Finding {
	findings := []Finding{}
	for _, line := range lines {
		m := pyflakesPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		findings = append(findings, Finding{
			Linter:   p.name,
			File:     m[1],
			Line:     atoi(m[2]),
			Column:   atoi(m[3]),
			Severity: SeverityWarning,
			Message:  m[4],
		})
	}
	return findings
}
