package collab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crewreview/crew/pkg/review"
)

func TestBuildPriorityMatrix(t *testing.T) {
	results := []review.AgentResult{
		makeResult(review.AgentSecurity,
			makeSuggestion(t, "s1", review.AgentSecurity, "Sanitize", "unsafe", 1, 9.5, ""),
			makeSuggestion(t, "s2", review.AgentSecurity, "Secrets", "hardcoded", 2, 7.5, "")),
		makeResult(review.AgentCleanCode,
			makeSuggestion(t, "c1", review.AgentCleanCode, "Naming", "rename", 1, 3.5, ""),
			makeSuggestion(t, "c2", review.AgentCleanCode, "Naming", "rename", 2, 3.5, ""),
			makeSuggestion(t, "c3", review.AgentCleanCode, "Naming", "rename", 3, 3.5, ""),
			makeSuggestion(t, "c4", review.AgentCleanCode, "Naming", "rename", 4, 5.5, "")),
	}

	matrix := BuildPriorityMatrix(results)

	// security: 1 critical + 1 high over 2 issues -> (10 + 5) / 2
	assert.InDelta(t, 7.5, matrix[review.AgentSecurity], 1e-9)
	// clean-code: 1 medium over 4 issues -> 2 / 4
	assert.InDelta(t, 0.5, matrix[review.AgentCleanCode], 1e-9)
}

func TestPriorityMatrixFavorsDensityOverVolume(t *testing.T) {
	// One severe finding should outrank many trivial ones.
	severe := makeResult(review.AgentSecurity,
		makeSuggestion(t, "s1", review.AgentSecurity, "Sanitize", "unsafe", 1, 9.5, ""))

	noisy := []review.Suggestion{}
	for i := 0; i < 10; i++ {
		noisy = append(noisy, makeSuggestion(t, "c", review.AgentCleanCode, "Naming", "rename", i+1, 2.0, ""))
	}

	matrix := BuildPriorityMatrix([]review.AgentResult{severe, makeResult(review.AgentCleanCode, noisy...)})

	assert.Greater(t, matrix[review.AgentSecurity], matrix[review.AgentCleanCode])
}

func TestPriorityMatrixEmptyAgent(t *testing.T) {
	matrix := BuildPriorityMatrix([]review.AgentResult{makeResult(review.AgentTestability)})

	assert.Equal(t, 0.0, matrix[review.AgentTestability])
}

func TestRankAgents(t *testing.T) {
	matrix := map[string]float64{
		review.AgentSecurity:    7.5,
		review.AgentCleanCode:   0.5,
		review.AgentPerformance: 7.5,
	}

	ranked := RankAgents(matrix)

	// Equal scores are ordered alphabetically for stability.
	assert.Equal(t, []string{review.AgentPerformance, review.AgentSecurity, review.AgentCleanCode}, ranked)
}
