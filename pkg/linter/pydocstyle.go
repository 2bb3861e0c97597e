package linter

import "regexp"

type pydocstyle struct {
	base
}

func newPydocstyle() *pydocstyle {
	return &pydocstyle{base: base{name: "pydocstyle", command: "pydocstyle"}}
}

// Each issue spans two lines:
//
//	file.py:1 at module level:
//	        D100: Missing docstring in public module
var (
	pydocstyleHeader = regexp.MustCompile(`^(\S.*?):(\d+)\s.*:$`)
	pydocstyleBody   = regexp.MustCompile(`^\s+(D\d{3}): (.*)$`)
)

func (p *pydocstyle) Parse(lines []string) []Finding {
	findings := []Finding{}
	var file string
	var lineNumber int
	for _, line := range lines {
		if m := pydocstyleHeader.FindStringSubmatch(line); m != nil {
			file = m[1]
			lineNumber = atoi(m[2])
			continue
		}
		m := pydocstyleBody.FindStringSubmatch(line)
		if m == nil || file == "" {
			continue
		}
		findings = append(findings, Finding{
			Linter:   p.name,
			File:     file,
			Line:     lineNumber,
			Rule:     m[1],
			Severity: SeverityInfo,
			Message:  m[2],
		})
		file = ""
	}
	return findings
}
