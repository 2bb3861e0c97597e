package linter

import "regexp"

type pycodestyle struct {
	base
}

func newPycodestyle() *pycodestyle {
	return &pycodestyle{base: base{name: "pycodestyle", command: "pycodestyle"}}
}

// file.py:1:80: E501 line too long (88 > 79 characters)
var pycodestylePattern = regexp.MustCompile(`^(.+?):(\d+):(\d+): ([EW]\d+) (.*)$`)

func (p *pycodestyle) Parse(lines []string) []Finding {
	findings := []Finding{}
	for _, line := range lines {
		m := pycodestylePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		sev := SeverityWarning
		if m[4][0] == 'E' {
			sev = SeverityError
		}
		findings = append(findings, Finding{
			Linter:   p.name,
			File:     m[1],
			Line:     atoi(m[2]),
			Column:   atoi(m[3]),
			Rule:     m[4],
			Severity: sev,
			Message:  m[5],
		})
	}
	return findings
}
