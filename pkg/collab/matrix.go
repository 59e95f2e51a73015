package collab

import (
	"sort"

	"github.com/crewreview/crew/pkg/review"
)

// BuildPriorityMatrix computes a severity-weighted density score per agent:
// (critical*10 + high*5 + medium*2) / max(1, total issues). An agent with a
// few severe findings outranks one with many low-severity findings.
func BuildPriorityMatrix(results []review.AgentResult) map[string]float64 {
	matrix := make(map[string]float64, len(results))

	for _, result := range results {
		critical := result.SeverityBreakdown[review.SeverityCritical]
		high := result.SeverityBreakdown[review.SeverityHigh]
		medium := result.SeverityBreakdown[review.SeverityMedium]

		divisor := result.TotalIssues
		if divisor < 1 {
			divisor = 1
		}

		matrix[result.AgentName] = float64(critical*10+high*5+medium*2) / float64(divisor)
	}

	return matrix
}

// RankAgents returns the agents of a priority matrix ordered by descending
// score, with ties broken alphabetically so the order is stable.
func RankAgents(matrix map[string]float64) []string {
	agents := make([]string, 0, len(matrix))
	for agent := range matrix {
		agents = append(agents, agent)
	}
	sort.Slice(agents, func(i, j int) bool {
		if matrix[agents[i]] != matrix[agents[j]] {
			return matrix[agents[i]] > matrix[agents[j]]
		}
		return agents[i] < agents[j]
	})
	return agents
}
