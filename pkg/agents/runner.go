package agents

import (
	"context"
	"sync"
	"time"

	"github.com/crewreview/crew/pkg/logger"
	"github.com/crewreview/crew/pkg/review"
)

// DefaultAgents returns the five built-in agents in their canonical order.
func DefaultAgents() []Agent {
	return []Agent{
		NewCleanCodeAgent(),
		NewSecurityAgent(),
		NewPerformanceAgent(),
		NewDesignPatternsAgent(),
		NewTestabilityAgent(),
	}
}

// Runner fans a snippet out to a set of agents concurrently and collects
// their results in registration order.
type Runner struct {
	agents []Agent
	logger *logger.Logger
}

// NewRunner creates a runner over the given agents. Nil agents selects the
// built-in set.
func NewRunner(agents []Agent, log *logger.Logger) *Runner {
	if agents == nil {
		agents = DefaultAgents()
	}
	if log == nil {
		log = logger.GetLogger()
	}
	return &Runner{
		agents: agents,
		logger: log.WithPrefix("runner"),
	}
}

// Agents returns the runner's agents in execution order.
func (r *Runner) Agents() []Agent {
	return append([]Agent(nil), r.agents...)
}

// Run executes every agent against the snippet in parallel. A failing agent
// is logged and contributes an empty result so one bad agent cannot sink
// the whole review; cancellation aborts the run.
func (r *Runner) Run(ctx context.Context, snippet review.Snippet) ([]review.AgentResult, error) {
	start := time.Now()
	results := make([]review.AgentResult, len(r.agents))

	var wg sync.WaitGroup
	for i, agent := range r.agents {
		wg.Add(1)
		go func(i int, agent Agent) {
			defer wg.Done()

			result, err := agent.Analyze(ctx, snippet)
			if err != nil {
				if ctx.Err() == nil {
					r.logger.Warn("agent %s failed: %v", agent.Name(), err)
				}
				result = review.NewAgentResult(agent.Name(), agent.Description(), nil, 0)
			}
			results[i] = result
		}(i, agent)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, result := range results {
		total += result.TotalIssues
	}
	r.logger.Info("review complete (path: %s, agents: %d, suggestions: %d, elapsed: %s)",
		snippet.Path, len(r.agents), total, time.Since(start).Round(time.Millisecond))

	return results, nil
}
