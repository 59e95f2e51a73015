package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/crewreview/crew/pkg/review"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report Report) error {
	ew := &errWriter{w: w}

	ew.printf("## Crew Code Review — `%s`\n\n", report.Path)

	counts := report.SeverityCounts()
	total := report.TotalSuggestions()

	ew.println("| Severity | Count |")
	ew.println("|----------|-------|")
	for _, sev := range review.Severities {
		ew.printf("| %s | %d |\n", capitalize(string(sev)), counts[sev])
	}
	ew.printf("| **Total** | **%d** |\n\n", total)

	ew.printf("**Collaboration score:** %.1f/100\n\n", report.Collaboration.OverallCollaborationScore)

	if total == 0 {
		ew.println("No issues found. :white_check_mark:")
		return ew.err
	}

	for _, result := range report.Results {
		if result.TotalIssues == 0 {
			continue
		}

		ew.printf("<details>\n<summary>%s (%d)</summary>\n\n", result.AgentName, result.TotalIssues)

		for _, s := range result.Suggestions {
			ew.printf("### %s\n\n", s.Principle)
			location := "file-level"
			if s.LineNumber > 0 {
				location = fmt.Sprintf("line %d", s.LineNumber)
			}
			ew.printf("**%s** | `%s` | Impact: %.1f | Confidence: %.0f%%\n\n",
				strings.ToUpper(string(s.Severity)), location, s.ImpactScore, s.Confidence*100)
			ew.printf("%s\n\n", s.Reasoning)
			if s.EducationalExplanation != "" && s.EducationalExplanation != s.Reasoning {
				ew.printf("> %s\n\n", s.EducationalExplanation)
			}
			if s.SuggestedCode != "" {
				ew.printf("**Suggestion:** %s\n\n", s.SuggestedCode)
			}
		}

		ew.println("</details>")
		ew.println("")
	}

	if len(report.Collaboration.Conflicts) > 0 {
		ew.println("## Conflicts")
		ew.println("")
		for _, c := range report.Collaboration.Conflicts {
			ew.printf("- **%s** (%s): %s", c.Type, strings.Join(c.InvolvedAgents, ", "), c.Description)
			if c.IsResolved() {
				ew.printf(" — resolved via `%s`: %s", c.Strategy, c.Rationale)
			}
			ew.println("")
		}
		ew.println("")
	}

	if len(report.Collaboration.Synergies) > 0 {
		ew.println("## Synergies")
		ew.println("")
		for _, s := range report.Collaboration.Synergies {
			ew.printf("- %s (combined impact %.1f)\n", s.SynthesisDescription, s.CombinedImpact)
		}
		ew.println("")
	}

	if len(report.Collaboration.RecommendedFocusAreas) > 0 {
		ew.println("## Recommended focus areas")
		ew.println("")
		for _, area := range report.Collaboration.RecommendedFocusAreas {
			ew.printf("1. %s\n", area)
		}
	}

	return ew.err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
