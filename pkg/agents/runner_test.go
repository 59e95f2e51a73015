package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewreview/crew/pkg/errors"
	"github.com/crewreview/crew/pkg/review"
)

type failingAgent struct{}

func (failingAgent) Name() string              { return "broken" }
func (failingAgent) Description() string       { return "always fails" }
func (failingAgent) Specializations() []string { return nil }

func (failingAgent) Analyze(context.Context, review.Snippet) (review.AgentResult, error) {
	return review.AgentResult{}, errors.NewError(errors.ErrorTypeAnalysis).
		WithMessage("broken agent").
		Build()
}

func TestRunnerPreservesRegistrationOrder(t *testing.T) {
	runner := NewRunner(nil, nil)
	snippet := review.NewSnippet("app.py", `password = "hunter2"`)

	results, err := runner.Run(context.Background(), snippet)
	require.NoError(t, err)
	require.Len(t, results, 5)

	agents := DefaultAgents()
	for i, result := range results {
		assert.Equal(t, agents[i].Name(), result.AgentName)
	}
}

func TestRunnerCollectsAllAgents(t *testing.T) {
	source := `password = "hunter2"
for user in users: row = db.query(user.id)
temp = compute()`

	results, err := NewRunner(nil, nil).Run(context.Background(), review.NewSnippet("app.py", source))
	require.NoError(t, err)

	byAgent := make(map[string]review.AgentResult, len(results))
	for _, result := range results {
		byAgent[result.AgentName] = result
	}

	assert.NotZero(t, byAgent[review.AgentSecurity].TotalIssues)
	assert.NotZero(t, byAgent[review.AgentPerformance].TotalIssues)
	assert.NotZero(t, byAgent[review.AgentCleanCode].TotalIssues)
}

func TestRunnerToleratesFailingAgent(t *testing.T) {
	runner := NewRunner([]Agent{failingAgent{}, NewSecurityAgent()}, nil)
	snippet := review.NewSnippet("app.py", `password = "hunter2"`)

	results, err := runner.Run(context.Background(), snippet)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "broken", results[0].AgentName)
	assert.Zero(t, results[0].TotalIssues)
	assert.Equal(t, 1, results[1].TotalIssues)
}

func TestRunnerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil, nil).Run(ctx, review.NewSnippet("app.py", "x := 1"))

	assert.ErrorIs(t, err, context.Canceled)
}
