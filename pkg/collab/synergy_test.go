package collab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewreview/crew/pkg/review"
)

func newTestSynergyDetector() *SynergyDetector {
	return NewSynergyDetector(DefaultSynergyRules(), nil)
}

func TestSecureCachingSynergy(t *testing.T) {
	validation := makeSuggestion(t, "s1", review.AgentSecurity, "Input Validation", "unchecked input", 10, 8.0, "")
	caching := makeSuggestion(t, "p1", review.AgentPerformance, "Response Caching", "add caching to avoid recomputation", 25, 7.0, "")

	results := []review.AgentResult{
		makeResult(review.AgentSecurity, validation),
		makeResult(review.AgentPerformance, caching),
	}

	synergies := newTestSynergyDetector().Detect(results)

	require.Len(t, synergies, 1)
	s := synergies[0]
	assert.ElementsMatch(t, []string{review.AgentSecurity, review.AgentPerformance}, s.InvolvedAgents)
	assert.Len(t, s.Suggestions, 2)

	// The synergy bonus makes the combined impact exceed the plain sum.
	plainSum := validation.ImpactScore + caching.ImpactScore
	assert.Greater(t, s.CombinedImpact, plainSum)
	assert.InDelta(t, plainSum*1.2, s.CombinedImpact, 1e-9)

	assert.Contains(t, s.SynthesisDescription, "secure caching")
	assert.Len(t, s.ImplementationOrder, 3)
}

func TestStrategyExtractionSynergy(t *testing.T) {
	results := []review.AgentResult{
		makeResult(review.AgentCleanCode,
			makeSuggestion(t, "c1", review.AgentCleanCode, "Single Responsibility", "class does too much", 40, 7.0, "")),
		makeResult(review.AgentDesignPatterns,
			makeSuggestion(t, "d1", review.AgentDesignPatterns, "Strategy Pattern", "conditional dispatch", 42, 6.5, "")),
	}

	synergies := newTestSynergyDetector().Detect(results)

	require.Len(t, synergies, 1)
	assert.InDelta(t, (7.0+6.5)*1.15, synergies[0].CombinedImpact, 1e-9)
	assert.Contains(t, synergies[0].SynthesisDescription, "Strategy pattern")
}

func TestNoSynergyWhenOneSideMissing(t *testing.T) {
	results := []review.AgentResult{
		makeResult(review.AgentSecurity,
			makeSuggestion(t, "s1", review.AgentSecurity, "Input Validation", "unchecked input", 10, 8.0, "")),
		makeResult(review.AgentPerformance,
			makeSuggestion(t, "p1", review.AgentPerformance, "Loop Hoisting", "hoist invariant", 25, 5.0, "")),
	}

	assert.Empty(t, newTestSynergyDetector().Detect(results))
}

func TestMultipleSynergiesFromOneReview(t *testing.T) {
	results := []review.AgentResult{
		makeResult(review.AgentSecurity,
			makeSuggestion(t, "s1", review.AgentSecurity, "Input Validation", "unchecked input", 10, 8.0, "")),
		makeResult(review.AgentPerformance,
			makeSuggestion(t, "p1", review.AgentPerformance, "Response Caching", "caching speeds this up", 25, 7.0, "")),
		makeResult(review.AgentCleanCode,
			makeSuggestion(t, "c1", review.AgentCleanCode, "Single Responsibility", "split this type", 40, 7.0, "")),
		makeResult(review.AgentDesignPatterns,
			makeSuggestion(t, "d1", review.AgentDesignPatterns, "Strategy Pattern", "replace switch", 42, 6.5, "")),
	}

	synergies := newTestSynergyDetector().Detect(results)

	require.Len(t, synergies, 2)
	assert.NotEqual(t, synergies[0].ID, synergies[1].ID)
}

func TestSynergyDetectionIsDeterministic(t *testing.T) {
	results := []review.AgentResult{
		makeResult(review.AgentSecurity,
			makeSuggestion(t, "s1", review.AgentSecurity, "Input Validation", "unchecked input", 10, 8.0, "")),
		makeResult(review.AgentPerformance,
			makeSuggestion(t, "p1", review.AgentPerformance, "Response Caching", "caching helps", 25, 7.0, "")),
	}

	detector := newTestSynergyDetector()
	assert.Equal(t, detector.Detect(results), detector.Detect(results))
}
