package collab

import (
	"fmt"
	"strings"

	"github.com/crewreview/crew/pkg/logger"
	"github.com/crewreview/crew/pkg/review"
)

// SynthesizedAgentName is the agent name recorded on suggestions the
// resolver creates itself.
const SynthesizedAgentName = "collaboration-engine"

// DefaultAgentHierarchy returns the fixed agent precedence used by the
// AGENT_HIERARCHY strategy and for impact tie-breaks. Agents missing from
// the table rank 0.
func DefaultAgentHierarchy() map[string]int {
	return map[string]int{
		review.AgentSecurity:       100,
		review.AgentPerformance:    80,
		review.AgentCleanCode:      60,
		review.AgentDesignPatterns: 50,
		review.AgentTestability:    40,
	}
}

// DefaultContextPriorities maps each project priority to an ordered agent
// preference list for the CONTEXT_DRIVEN strategy. "balanced" deliberately
// has no entry: balanced philosophical conflicts go to the user instead.
func DefaultContextPriorities() map[string][]string {
	return map[string][]string{
		PriorityPerformance:     {review.AgentPerformance, review.AgentSecurity, review.AgentCleanCode},
		PrioritySecurity:        {review.AgentSecurity, review.AgentPerformance, review.AgentDesignPatterns},
		PriorityMaintainability: {review.AgentCleanCode, review.AgentDesignPatterns, review.AgentTestability},
	}
}

// Resolver applies resolution strategies to detected conflicts.
type Resolver struct {
	context    ProjectContext
	hierarchy  map[string]int
	priorities map[string][]string
	logger     *logger.Logger
}

// NewResolver creates a resolver for the given project context. Nil tables
// select the defaults.
func NewResolver(context ProjectContext, hierarchy map[string]int, priorities map[string][]string, log *logger.Logger) *Resolver {
	if hierarchy == nil {
		hierarchy = DefaultAgentHierarchy()
	}
	if priorities == nil {
		priorities = DefaultContextPriorities()
	}
	if log == nil {
		log = logger.GetLogger()
	}
	return &Resolver{
		context:    context,
		hierarchy:  hierarchy,
		priorities: priorities,
		logger:     log.WithPrefix("resolver"),
	}
}

// SelectStrategy picks the resolution strategy for a conflict. The table is
// deliberate: irreconcilable philosophical trade-offs need human judgment
// unless the project declares a bias, contradictory edits cannot be merged
// so the higher-impact one wins, and redundant overlaps are synthesized.
func (r *Resolver) SelectStrategy(c Conflict) ResolutionStrategy {
	switch c.Type {
	case ConflictPhilosophical:
		if r.context.Priority != PriorityBalanced && r.context.Priority != "" {
			return StrategyContextDriven
		}
		return StrategyUserChoice
	case ConflictContradictory:
		return StrategyImpactWeighted
	case ConflictOverlapping:
		return StrategySynthesis
	default:
		return StrategyAgentHierarchy
	}
}

// Resolve applies the selected strategy to each conflict and returns
// resolved copies; the input slice is not modified. Resolution is
// idempotent for a fixed project context.
func (r *Resolver) Resolve(conflicts []Conflict) []Conflict {
	resolved := make([]Conflict, 0, len(conflicts))
	for _, c := range conflicts {
		resolved = append(resolved, r.resolveOne(c))
	}

	r.logger.Debug("resolution complete (conflicts: %d)", len(resolved))

	return resolved
}

func (r *Resolver) resolveOne(c Conflict) Conflict {
	c.Strategy = r.SelectStrategy(c)

	switch c.Strategy {
	case StrategyContextDriven:
		return r.resolveByContext(c)
	case StrategyImpactWeighted:
		return r.resolveByImpact(c)
	case StrategyAgentHierarchy:
		return r.resolveByHierarchy(c)
	case StrategySynthesis:
		return r.resolveBySynthesis(c)
	default:
		c.Rationale = "Requires user decision - multiple valid approaches with different trade-offs"
		return c
	}
}

// resolveByContext walks the project priority's agent preference list and
// picks the first involved suggestion whose agent appears. Falls back to
// impact weighting when the list covers none of the involved agents.
func (r *Resolver) resolveByContext(c Conflict) Conflict {
	for _, agent := range r.priorities[r.context.Priority] {
		for i := range c.Suggestions {
			if c.Suggestions[i].AgentName == agent {
				winner := c.Suggestions[i]
				c.Resolved = &winner
				c.Rationale = fmt.Sprintf("Resolved based on project priority: %s", r.context.Priority)
				return c
			}
		}
	}
	return r.resolveByImpact(c)
}

// resolveByImpact picks the highest-impact suggestion; ties go to the agent
// with the higher hierarchy rank.
func (r *Resolver) resolveByImpact(c Conflict) Conflict {
	var winner *review.Suggestion
	for i := range c.Suggestions {
		s := &c.Suggestions[i]
		if winner == nil ||
			s.ImpactScore > winner.ImpactScore ||
			(s.ImpactScore == winner.ImpactScore && r.rank(s.AgentName) > r.rank(winner.AgentName)) {
			winner = s
		}
	}
	if winner == nil {
		c.Rationale = "No suggestions to resolve"
		return c
	}

	chosen := *winner
	c.Resolved = &chosen
	c.Rationale = fmt.Sprintf("Resolved by selecting highest impact suggestion (score: %.1f)", chosen.ImpactScore)
	return c
}

// resolveByHierarchy picks the suggestion from the highest-ranked agent.
func (r *Resolver) resolveByHierarchy(c Conflict) Conflict {
	best := -1
	var winner *review.Suggestion
	for i := range c.Suggestions {
		s := &c.Suggestions[i]
		if rank := r.rank(s.AgentName); rank > best {
			best = rank
			winner = s
		}
	}
	if winner == nil {
		c.Rationale = "No suggestions to resolve"
		return c
	}

	chosen := *winner
	c.Resolved = &chosen
	c.Rationale = fmt.Sprintf("Resolved using agent hierarchy (priority: %d)", best)
	return c
}

// resolveBySynthesis merges the overlapping suggestions into one new
// synthesized suggestion. The first non-empty suggested code is kept as-is;
// no line-level code merge is attempted.
func (r *Resolver) resolveBySynthesis(c Conflict) Conflict {
	if len(c.Suggestions) == 0 {
		c.Rationale = "No suggestions to resolve"
		return c
	}

	var principles, reasonings, explanations []string
	seenPrinciples := make(map[string]struct{})

	impactSum := 0.0
	confidence := 1.0
	severity := review.SeverityInfo
	suggestedCode := ""
	for _, s := range c.Suggestions {
		if _, ok := seenPrinciples[s.Principle]; !ok {
			seenPrinciples[s.Principle] = struct{}{}
			principles = append(principles, s.Principle)
		}
		reasonings = append(reasonings, s.Reasoning)
		explanations = append(explanations, s.EducationalExplanation)
		impactSum += s.ImpactScore
		if s.Confidence < confidence {
			confidence = s.Confidence
		}
		if s.Severity.Rank() > severity.Rank() {
			severity = s.Severity
		}
		if suggestedCode == "" && s.SuggestedCode != "" {
			suggestedCode = s.SuggestedCode
		}
	}

	synthesized, err := review.NewSuggestion(review.Suggestion{
		ID:                     "synthesized_" + c.ID,
		AgentName:              SynthesizedAgentName,
		Principle:              "Combined approach: " + strings.Join(principles, ", "),
		LineNumber:             c.LineNumber,
		OriginalCode:           c.Suggestions[0].OriginalCode,
		SuggestedCode:          suggestedCode,
		Reasoning:              "Synthesized from multiple approaches: " + strings.Join(reasonings, "; "),
		EducationalExplanation: "This represents a convergence of multiple best practices: " + strings.Join(explanations, " | "),
		ImpactScore:            impactSum / float64(len(c.Suggestions)),
		Confidence:             confidence,
		Category:               "synthesis",
	})
	if err != nil {
		// Constituents passed construction, so synthesis only fails on an
		// empty conflict; fall back to impact weighting.
		r.logger.Warn("synthesis failed for conflict %s: %v", c.ID, err)
		return r.resolveByImpact(c)
	}

	// Synthesis is conservative: it keeps the most severe constituent even
	// when the averaged impact would map lower.
	synthesized.Severity = severity

	c.Resolved = &synthesized
	c.Rationale = "Resolved by synthesizing multiple agent suggestions into unified approach"
	return c
}

func (r *Resolver) rank(agent string) int {
	return r.hierarchy[agent]
}
