// Package output renders finished review reports in the supported formats.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/crewreview/crew/pkg/collab"
	"github.com/crewreview/crew/pkg/review"
)

// Report is the complete artifact of one review run: the per-agent results
// plus the collaboration analysis over them.
type Report struct {
	Path        string    `json:"path"`
	Language    string    `json:"language"`
	GeneratedAt time.Time `json:"generated_at"`

	Results       []review.AgentResult `json:"agent_results"`
	Collaboration collab.Report        `json:"collaboration"`
}

// TotalSuggestions counts findings across all agents.
func (r Report) TotalSuggestions() int {
	total := 0
	for _, result := range r.Results {
		total += result.TotalIssues
	}
	return total
}

// SeverityCounts aggregates the per-agent severity breakdowns.
func (r Report) SeverityCounts() map[review.Severity]int {
	counts := make(map[review.Severity]int, len(review.Severities))
	for _, sev := range review.Severities {
		counts[sev] = 0
	}
	for _, result := range r.Results {
		for sev, n := range result.SeverityBreakdown {
			counts[sev] += n
		}
	}
	return counts
}

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string, color bool) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{Color: color}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to the given file path, or stdout when the
// path is empty.
func WriteReport(report Report, format, outPath string, color bool) error {
	writer, err := GetWriter(format, color)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath) //nolint:gosec // output path is user-chosen
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // best-effort close on write path
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, report)
}
