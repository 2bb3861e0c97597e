package linter

import "regexp"

type pylint struct {
	base
}

func newPylint() *pylint {
	return &pylint{base: base{
		name:    "pylint",
		command: "pylint",
		args:    `--msg-template='{path}:{line}:{column}: {msg_id} {msg} ({symbol})' --reports=n --score=n`,
	}}
}

var pylintPattern = regexp.MustCompile(`^(.+?):(\d+):(\d+): ([CRWEFI]\d{4}) (.*)$`)

func (p *pylint) Parse(lines []string) []Finding {
	findings := []Finding{}
	for _, line := range lines {
		m := pylintPattern.FindStringSubmatch(line)
		if m == nil {
			// "************* Module foo" headers and the like
			continue
		}
		findings = append(findings, Finding{
			Linter:   p.name,
			File:     m[1],
			Line:     atoi(m[2]),
			Column:   atoi(m[3]),
			Rule:     m[4],
			Severity: pylintSeverity(m[4][0]),
			Message:  m[5],
		})
	}
	return findings
}

func pylintSeverity(category byte) Severity {
	switch category {
	case 'E', 'F':
		return SeverityError
	case 'W':
		return SeverityWarning
	default:
		return SeverityInfo
	}
}
