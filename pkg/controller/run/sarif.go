package run

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/suzuki-shunsuke/yala/pkg/linter"
	"github.com/suzuki-shunsuke/yala/pkg/sarif"
)

const ruleLinterError = "linter-error"

// outputSARIF outputs findings in SARIF format to stdout.
func (c *Controller) outputSARIF(findings []linter.Finding) error {
	log := sarif.NewLog(sarif.Driver{
		Name:           "yala",
		InformationURI: "https://github.com/suzuki-shunsuke/yala",
		Rules:          buildSARIFRules(findings),
	}, buildSARIFResults(findings))

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func sarifRuleID(f linter.Finding) string {
	if f.File == "" {
		return ruleLinterError
	}
	if f.Rule == "" {
		return f.Linter
	}
	return f.Linter + "/" + f.Rule
}

func sarifLevel(s linter.Severity) string {
	switch s {
	case linter.SeverityError:
		return sarif.LevelError
	case linter.SeverityWarning:
		return sarif.LevelWarning
	default:
		return sarif.LevelNote
	}
}

func buildSARIFRules(findings []linter.Finding) []sarif.Rule {
	rules := []sarif.Rule{}
	seen := map[string]struct{}{}
	for _, f := range findings {
		id := sarifRuleID(f)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		desc := "Reported by " + f.Linter
		if id == ruleLinterError {
			desc = "A linter couldn't be run"
		}
		rules = append(rules, sarif.Rule{
			ID:               id,
			ShortDescription: sarif.Message{Text: desc},
		})
	}
	slices.SortFunc(rules, func(a, b sarif.Rule) int {
		return strings.Compare(a.ID, b.ID)
	})
	return rules
}

func buildSARIFResults(findings []linter.Finding) []sarif.Result {
	results := make([]sarif.Result, 0, len(findings))
	for _, f := range findings {
		r := sarif.Result{
			RuleID:    sarifRuleID(f),
			Level:     sarifLevel(f.Severity),
			Message:   sarif.Message{Text: f.Message},
			Locations: []sarif.Location{},
		}
		if f.File != "" {
			loc := sarif.Location{
				PhysicalLocation: sarif.PhysicalLocation{
					ArtifactLocation: sarif.ArtifactLocation{
						URI: f.File,
					},
				},
			}
			if f.Line > 0 {
				loc.PhysicalLocation.Region = &sarif.Region{
					StartLine:   f.Line,
					StartColumn: f.Column,
				}
			}
			r.Locations = append(r.Locations, loc)
		}
		results = append(results, r)
	}
	return results
}
