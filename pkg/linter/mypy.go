package linter

import "regexp"

type mypy struct {
	base
}

func newMypy() *mypy {
	return &mypy{base: base{
		name:    "mypy",
		command: "mypy",
		args:    "--show-column-numbers --no-error-summary",
	}}
}

// file.py:12:5: error: Incompatible return value type  [return-value]
var mypyPattern = regexp.MustCompile(`^(.+?):(\d+):(?:(\d+):)? (error|warning|note): (.*?)(?:  \[([a-z0-9-]+)\])?$`)

func (p *mypy) Parse(lines []string) []Finding {
	findings := []Finding{}
	for _, line := range lines {
		m := mypyPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		findings = append(findings, Finding{
			Linter:   p.name,
			File:     m[1],
			Line:     atoi(m[2]),
			Column:   atoi(m[3]),
			Rule:     m[6],
			Severity: SeverityFromString(m[4]),
			Message:  m[5],
		})
	}
	return findings
}
