// Package collab implements the cross-agent collaboration engine: it takes
// the independent result batches of the review agents, detects conflicts and
// synergies between their suggestions, resolves conflicts with a set of
// fixed strategies, and assembles a single prioritized collaboration report.
package collab

import (
	"github.com/crewreview/crew/pkg/review"
)

// ConflictType classifies a disagreement between agent suggestions.
type ConflictType string

const (
	// ConflictPhilosophical marks different overall approaches to the same
	// problem, not anchored to a single line.
	ConflictPhilosophical ConflictType = "philosophical"

	// ConflictOverlapping marks multiple agents redundantly targeting the
	// same issue.
	ConflictOverlapping ConflictType = "overlapping"

	// ConflictContradictory marks mutually exclusive suggestions.
	ConflictContradictory ConflictType = "contradictory"

	// ConflictPriority marks disagreeing priority assessments.
	ConflictPriority ConflictType = "priority"
)

// ResolutionStrategy identifies one of the fixed conflict resolution
// algorithms.
type ResolutionStrategy string

const (
	StrategyContextDriven  ResolutionStrategy = "context_driven"
	StrategyImpactWeighted ResolutionStrategy = "impact_weighted"
	StrategyAgentHierarchy ResolutionStrategy = "agent_hierarchy"
	StrategyUserChoice     ResolutionStrategy = "user_choice"
	StrategySynthesis      ResolutionStrategy = "synthesis"
)

// Project priority values recognised by the engine.
const (
	PriorityPerformance     = "performance"
	PrioritySecurity        = "security"
	PriorityMaintainability = "maintainability"
	PriorityBalanced        = "balanced"
)

// ProjectContext describes the project being reviewed and biases conflict
// resolution. It is read-only for the lifetime of an engine.
type ProjectContext struct {
	Priority            string  `yaml:"priority" json:"priority"`
	DevelopmentPhase    string  `yaml:"development_phase" json:"development_phase"`
	TeamSize            int     `yaml:"team_size" json:"team_size"`
	PerformanceCritical bool    `yaml:"performance_critical" json:"performance_critical"`
	SecuritySensitive   bool    `yaml:"security_sensitive" json:"security_sensitive"`
	LegacySystem        bool    `yaml:"legacy_system" json:"legacy_system"`
	TestCoverage        float64 `yaml:"test_coverage" json:"test_coverage"`
	TechnicalDebtLevel  string  `yaml:"technical_debt_level" json:"technical_debt_level"`
}

// DefaultProjectContext returns a balanced context for projects that do not
// declare one.
func DefaultProjectContext() ProjectContext {
	return ProjectContext{
		Priority:           PriorityBalanced,
		DevelopmentPhase:   "development",
		TeamSize:           5,
		TestCoverage:       0.7,
		TechnicalDebtLevel: "medium",
	}
}

// Conflict is a detected disagreement between two or more agents. Detection
// fills every field up to ImpactAssessment; resolution sets Strategy,
// Resolved and Rationale exactly once. A Resolved of nil after resolution
// means the conflict was deferred to a human (user choice).
type Conflict struct {
	ID               string              `json:"conflict_id"`
	Type             ConflictType        `json:"conflict_type"`
	InvolvedAgents   []string            `json:"involved_agents"`
	Suggestions      []review.Suggestion `json:"conflicting_suggestions"`
	LineNumber       int                 `json:"line_number,omitempty"`
	Description      string              `json:"description"`
	ImpactAssessment float64             `json:"impact_assessment"`

	Strategy  ResolutionStrategy `json:"resolution_strategy,omitempty"`
	Resolved  *review.Suggestion `json:"resolved_suggestion,omitempty"`
	Rationale string             `json:"resolution_rationale,omitempty"`
}

// IsResolved reports whether the conflict was auto-resolved to a single
// suggestion.
func (c Conflict) IsResolved() bool {
	return c.Resolved != nil
}

// Synergy is a detected complementary pairing: suggestions from different
// agents worth more applied together than separately.
type Synergy struct {
	ID                   string              `json:"synergy_id"`
	InvolvedAgents       []string            `json:"involved_agents"`
	Suggestions          []review.Suggestion `json:"synergistic_suggestions"`
	CombinedImpact       float64             `json:"combined_impact"`
	SynthesisDescription string              `json:"synthesis_description"`
	ImplementationOrder  []string            `json:"implementation_order"`
}

// Report is the terminal artifact of one collaboration analysis.
type Report struct {
	TotalSuggestions          int                `json:"total_suggestions"`
	Conflicts                 []Conflict         `json:"conflicts"`
	Synergies                 []Synergy          `json:"synergies"`
	PriorityMatrix            map[string]float64 `json:"priority_matrix"`
	RecommendedFocusAreas     []string           `json:"recommended_focus_areas"`
	OverallCollaborationScore float64            `json:"overall_collaboration_score"`
}
