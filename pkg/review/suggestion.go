// Package review defines the data model shared by the review agents and the
// collaboration engine: suggestions, severities, and per-agent run results.
package review

import (
	"fmt"
	"time"
)

// Canonical names of the built-in review agents. The collaboration engine
// keys its hierarchy and preference tables on these; unknown names are
// accepted everywhere and simply rank lowest.
const (
	AgentCleanCode      = "clean-code"
	AgentSecurity       = "security"
	AgentPerformance    = "performance"
	AgentDesignPatterns = "design-patterns"
	AgentTestability    = "testability"
)

// Severity classifies a suggestion by how urgently it should be addressed.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// Severities lists all severity levels from most to least severe.
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInfo,
}

// Rank returns a numeric rank for comparison (higher = more severe).
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 5
	case SeverityHigh:
		return 4
	case SeverityMedium:
		return 3
	case SeverityLow:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// SeverityForImpact derives a severity level from an impact score using the
// fixed thresholds shared by all agents.
func SeverityForImpact(impact float64) Severity {
	switch {
	case impact >= 9.0:
		return SeverityCritical
	case impact >= 7.0:
		return SeverityHigh
	case impact >= 5.0:
		return SeverityMedium
	case impact >= 3.0:
		return SeverityLow
	default:
		return SeverityInfo
	}
}

// Suggestion is a single finding produced by one agent. LineNumber is 1-based;
// zero means the finding applies to the whole file.
type Suggestion struct {
	ID                     string   `json:"id"`
	AgentName              string   `json:"agent_name"`
	Principle              string   `json:"principle"`
	LineNumber             int      `json:"line_number,omitempty"`
	OriginalCode           string   `json:"original_code,omitempty"`
	SuggestedCode          string   `json:"suggested_code,omitempty"`
	Reasoning              string   `json:"reasoning"`
	EducationalExplanation string   `json:"educational_explanation"`
	ImpactScore            float64  `json:"impact_score"`
	Confidence             float64  `json:"confidence"`
	Severity               Severity `json:"severity"`
	Category               string   `json:"category"`
}

// NewSuggestion constructs a Suggestion, clamping ImpactScore to [1,10] and
// Confidence to [0,1] and deriving Severity from the clamped impact. The
// required textual fields must be non-empty; everything downstream trusts
// values that passed through here.
func NewSuggestion(s Suggestion) (Suggestion, error) {
	if s.ID == "" {
		return Suggestion{}, fmt.Errorf("suggestion id cannot be empty")
	}
	if s.AgentName == "" {
		return Suggestion{}, fmt.Errorf("suggestion agent name cannot be empty")
	}
	if s.Principle == "" {
		return Suggestion{}, fmt.Errorf("suggestion principle cannot be empty")
	}
	if s.Reasoning == "" {
		return Suggestion{}, fmt.Errorf("suggestion reasoning cannot be empty")
	}

	s.ImpactScore = clamp(s.ImpactScore, 1.0, 10.0)
	s.Confidence = clamp(s.Confidence, 0.0, 1.0)
	s.Severity = SeverityForImpact(s.ImpactScore)
	if s.Category == "" {
		s.Category = "general"
	}

	return s, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AgentResult is the complete batch of suggestions from one agent run.
type AgentResult struct {
	AgentName         string           `json:"agent_name"`
	AgentDescription  string           `json:"agent_description"`
	Suggestions       []Suggestion     `json:"suggestions"`
	ExecutionTime     time.Duration    `json:"execution_time"`
	TotalIssues       int              `json:"total_issues"`
	SeverityBreakdown map[Severity]int `json:"severity_breakdown"`
}

// NewAgentResult builds an AgentResult with the derived counters filled in.
func NewAgentResult(name, description string, suggestions []Suggestion, elapsed time.Duration) AgentResult {
	return AgentResult{
		AgentName:         name,
		AgentDescription:  description,
		Suggestions:       suggestions,
		ExecutionTime:     elapsed,
		TotalIssues:       len(suggestions),
		SeverityBreakdown: BreakdownBySeverity(suggestions),
	}
}

// BreakdownBySeverity counts suggestions per severity level. Every level is
// present in the result, defaulting to zero.
func BreakdownBySeverity(suggestions []Suggestion) map[Severity]int {
	breakdown := make(map[Severity]int, len(Severities))
	for _, sev := range Severities {
		breakdown[sev] = 0
	}
	for _, s := range suggestions {
		breakdown[s.Severity]++
	}
	return breakdown
}

// CountAtLeast returns how many suggestions in the result are at or above the
// given severity.
func (r AgentResult) CountAtLeast(sev Severity) int {
	count := 0
	for _, s := range r.Suggestions {
		if s.Severity.Rank() >= sev.Rank() {
			count++
		}
	}
	return count
}
