package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crewreview/crew/pkg/collab"
	"github.com/crewreview/crew/pkg/review"
)

// TextWriter outputs a human-readable terminal report.
type TextWriter struct {
	// Color enables lipgloss styling; plain text otherwise.
	Color bool
}

var severityStyles = map[review.Severity]lipgloss.Style{
	review.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	review.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	review.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	review.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	review.SeverityInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func (t *TextWriter) style(style lipgloss.Style, text string) string {
	if !t.Color {
		return text
	}
	return style.Render(text)
}

func (t *TextWriter) severityLabel(sev review.Severity) string {
	return t.style(severityStyles[sev], strings.ToUpper(string(sev)))
}

func (t *TextWriter) Write(w io.Writer, report Report) error {
	ew := &errWriter{w: w}
	rule := strings.Repeat("─", 60)

	ew.printf("%s\n", t.style(headerStyle, fmt.Sprintf("crew code review — %s (%s)", report.Path, report.Language)))
	ew.println(rule)

	total := report.TotalSuggestions()
	counts := report.SeverityCounts()
	ew.printf("Findings: %d total", total)
	if total > 0 {
		ew.printf(" (%d critical, %d high, %d medium, %d low, %d info)",
			counts[review.SeverityCritical],
			counts[review.SeverityHigh],
			counts[review.SeverityMedium],
			counts[review.SeverityLow],
			counts[review.SeverityInfo])
	}
	ew.println("")
	ew.printf("Collaboration score: %.1f/100\n", report.Collaboration.OverallCollaborationScore)
	ew.println(rule)

	if total == 0 {
		ew.println("\nNo issues found. Looks good!")
		return ew.err
	}

	for _, result := range report.Results {
		if result.TotalIssues == 0 {
			continue
		}

		ew.printf("\n%s (%d findings)\n", t.style(headerStyle, result.AgentName), result.TotalIssues)
		ew.println(strings.Repeat("─", 40))

		for _, s := range result.Suggestions {
			location := "file"
			if s.LineNumber > 0 {
				location = fmt.Sprintf("line %d", s.LineNumber)
			}
			ew.printf("\n  [%s] %s (%s, impact %.1f)\n", t.severityLabel(s.Severity), s.Principle, location, s.ImpactScore)
			for _, line := range wrapText(s.Reasoning, 70) {
				ew.printf("    %s\n", line)
			}
			if s.SuggestedCode != "" {
				ew.printf("    Suggestion: %s\n", s.SuggestedCode)
			}
		}
	}

	t.writeCollaboration(ew, report.Collaboration)

	return ew.err
}

func (t *TextWriter) writeCollaboration(ew *errWriter, analysis collab.Report) {
	if len(analysis.Conflicts) > 0 {
		ew.printf("\n%s\n", t.style(headerStyle, "Conflicts"))
		ew.println(strings.Repeat("─", 40))
		for _, c := range analysis.Conflicts {
			ew.printf("\n  [%s] %s\n", c.Type, c.Description)
			ew.printf("  Agents: %s\n", strings.Join(c.InvolvedAgents, ", "))
			if c.Strategy != "" {
				ew.printf("  Strategy: %s\n", c.Strategy)
			}
			if c.IsResolved() {
				ew.printf("  Resolved: %s — %s\n", c.Resolved.AgentName, c.Rationale)
			} else if c.Rationale != "" {
				ew.printf("  Unresolved: %s\n", c.Rationale)
			}
		}
	}

	if len(analysis.Synergies) > 0 {
		ew.printf("\n%s\n", t.style(headerStyle, "Synergies"))
		ew.println(strings.Repeat("─", 40))
		for _, s := range analysis.Synergies {
			ew.printf("\n  %s (combined impact %.1f)\n", s.SynthesisDescription, s.CombinedImpact)
			for i, step := range s.ImplementationOrder {
				ew.printf("    %d. %s\n", i+1, step)
			}
		}
	}

	if len(analysis.RecommendedFocusAreas) > 0 {
		ew.printf("\n%s\n", t.style(headerStyle, "Focus areas"))
		ew.println(strings.Repeat("─", 40))
		for _, area := range analysis.RecommendedFocusAreas {
			ew.printf("  • %s\n", area)
		}
	}

	if len(analysis.PriorityMatrix) > 0 {
		ew.printf("\n%s\n", t.style(headerStyle, "Agent priorities"))
		ew.println(strings.Repeat("─", 40))
		for _, agent := range collab.RankAgents(analysis.PriorityMatrix) {
			ew.printf("  %-16s %.2f\n", agent, analysis.PriorityMatrix[agent])
		}
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
