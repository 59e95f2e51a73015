package collab

import (
	"fmt"

	"github.com/crewreview/crew/pkg/logger"
	"github.com/crewreview/crew/pkg/review"
)

// Scoring constants for the overall collaboration score.
const (
	perfectScore         = 100.0
	conflictPenalty      = 5.0
	majorConflictPenalty = 10.0
	synergyBonus         = 10.0

	// majorConflictThreshold separates routine disagreement from conflicts
	// worth calling out on their own.
	majorConflictThreshold = 7.0
)

// EngineConfig configures a collaboration engine. Zero-value fields select
// the built-in defaults, so EngineConfig{Context: ctx} is a complete
// configuration.
type EngineConfig struct {
	Context    ProjectContext
	Hierarchy  map[string]int
	Patterns   []ConflictPattern
	Synergies  []SynergyRule
	Priorities map[string][]string
	Classifier Classifier
	Logger     *logger.Logger
}

// Engine coordinates conflict detection, synergy detection, resolution, and
// report assembly across agent result batches. It is stateless between
// invocations apart from its fixed tables, performs no I/O, and never
// mutates its inputs.
type Engine struct {
	context  ProjectContext
	detector *Detector
	synergy  *SynergyDetector
	resolver *Resolver
	logger   *logger.Logger
}

// NewEngine creates a collaboration engine.
func NewEngine(config EngineConfig) *Engine {
	if config.Context == (ProjectContext{}) {
		config.Context = DefaultProjectContext()
	}
	if config.Patterns == nil {
		config.Patterns = DefaultConflictPatterns()
	}
	if config.Synergies == nil {
		config.Synergies = DefaultSynergyRules()
	}
	log := config.Logger
	if log == nil {
		log = logger.GetLogger()
	}
	log = log.WithPrefix("collab")

	return &Engine{
		context:  config.Context,
		detector: NewDetector(config.Patterns, config.Classifier, log),
		synergy:  NewSynergyDetector(config.Synergies, log),
		resolver: NewResolver(config.Context, config.Hierarchy, config.Priorities, log),
		logger:   log,
	}
}

// AnalyzeCollaboration runs detection, the priority matrix, focus areas, and
// scoring over the given results. Conflicts in the returned report are
// unresolved; callers inspect them and invoke ResolveConflicts separately.
// An empty input yields an empty report with a perfect score.
func (e *Engine) AnalyzeCollaboration(results []review.AgentResult) Report {
	total := 0
	for _, result := range results {
		total += len(result.Suggestions)
	}

	conflicts := e.detector.Detect(results)
	synergies := e.synergy.Detect(results)

	report := Report{
		TotalSuggestions:          total,
		Conflicts:                 conflicts,
		Synergies:                 synergies,
		PriorityMatrix:            BuildPriorityMatrix(results),
		RecommendedFocusAreas:     e.recommendFocusAreas(results, conflicts, synergies),
		OverallCollaborationScore: e.collaborationScore(conflicts, synergies, total),
	}

	e.logger.Info("collaboration analysis complete (suggestions: %d, conflicts: %d, synergies: %d, score: %.1f)",
		total, len(conflicts), len(synergies), report.OverallCollaborationScore)

	return report
}

// ResolveConflicts resolves each conflict with its selected strategy and
// returns resolved copies.
func (e *Engine) ResolveConflicts(conflicts []Conflict) []Conflict {
	return e.resolver.Resolve(conflicts)
}

// Context returns the project context the engine was built with.
func (e *Engine) Context() ProjectContext {
	return e.context
}

// recommendFocusAreas derives the ordered focus-area list: per-agent
// critical/high callouts first, then synergy opportunities, then one
// aggregate item for high-impact conflicts.
func (e *Engine) recommendFocusAreas(results []review.AgentResult, conflicts []Conflict, synergies []Synergy) []string {
	var areas []string

	for _, result := range results {
		critical := result.SeverityBreakdown[review.SeverityCritical]
		high := result.SeverityBreakdown[review.SeverityHigh]

		switch {
		case critical > 0:
			areas = append(areas, fmt.Sprintf("%s: %d critical issues require immediate attention", result.AgentName, critical))
		case high > 2:
			areas = append(areas, fmt.Sprintf("%s: Multiple high-impact improvements available", result.AgentName))
		}
	}

	for _, synergy := range synergies {
		areas = append(areas, fmt.Sprintf("Synergy opportunity: %s", synergy.SynthesisDescription))
	}

	if major := countMajorConflicts(conflicts); major > 0 {
		areas = append(areas, fmt.Sprintf("Resolve %d high-impact conflicts between agents", major))
	}

	return areas
}

// collaborationScore starts from a perfect score, penalizes conflicts
// (twice over for high-impact ones), rewards synergies, and clamps to
// [0, 100].
func (e *Engine) collaborationScore(conflicts []Conflict, synergies []Synergy, totalSuggestions int) float64 {
	if totalSuggestions == 0 {
		return perfectScore
	}

	score := perfectScore
	score -= float64(len(conflicts)) * conflictPenalty
	score -= float64(countMajorConflicts(conflicts)) * majorConflictPenalty
	score += float64(len(synergies)) * synergyBonus

	if score < 0 {
		return 0
	}
	if score > perfectScore {
		return perfectScore
	}
	return score
}

func countMajorConflicts(conflicts []Conflict) int {
	count := 0
	for _, c := range conflicts {
		if c.ImpactAssessment > majorConflictThreshold {
			count++
		}
	}
	return count
}
