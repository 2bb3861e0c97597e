package linter

import (
	"regexp"
	"strings"
)

type radonCC struct {
	base
}

func newRadonCC() *radonCC {
	return &radonCC{base: base{name: "radon cc", command: "radon cc", args: "--min D"}}
}

// A file path is followed by indented blocks:
//
//	pkg/module.py
//	    F 12:0 parse - D
//	    M 40:4 Parser.run - E (33)
var radonBlockPattern = regexp.MustCompile(`^\s+([FMC]) (\d+):(\d+) (\S+) - ([A-F])(?: \((\d+)\))?$`)

func (p *radonCC) Parse(lines []string) []Finding {
	findings := []Finding{}
	var file string
	for _, line := range lines {
		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			file = strings.TrimSpace(line)
			continue
		}
		m := radonBlockPattern.FindStringSubmatch(line)
		if m == nil || file == "" {
			continue
		}
		findings = append(findings, Finding{
			Linter:   p.name,
			File:     file,
			Line:     atoi(m[2]),
			Column:   atoi(m[3]) + 1,
			Rule:     m[5],
			Severity: radonSeverity(m[5]),
			Message:  m[4] + " is too complex",
		})
	}
	return findings
}

type radonMI struct {
	base
}

func newRadonMI() *radonMI {
	return &radonMI{base: base{name: "radon mi", command: "radon mi", args: "--min C"}}
}

// pkg/module.py - C (7.34)
var radonMIPattern = regexp.MustCompile(`^(\S.*?) - ([A-F])(?: \(([\d.]+)\))?$`)

func (p *radonMI) Parse(lines []string) []Finding {
	findings := []Finding{}
	for _, line := range lines {
		m := radonMIPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		findings = append(findings, Finding{
			Linter:   p.name,
			File:     m[1],
			Rule:     m[2],
			Severity: radonSeverity(m[2]),
			Message:  "low maintainability index",
		})
	}
	return findings
}

func radonSeverity(rank string) Severity {
	switch rank {
	case "A", "B", "C":
		return SeverityInfo
	case "D":
		return SeverityWarning
	default:
		return SeverityError
	}
}
