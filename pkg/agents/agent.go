// Package agents implements the specialized review agents. Each agent scans
// a source snippet line by line against a fixed rule table and emits
// structured suggestions for the collaboration engine to reconcile.
package agents

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crewreview/crew/pkg/errors"
	"github.com/crewreview/crew/pkg/logger"
	"github.com/crewreview/crew/pkg/review"
)

// Agent is a single review specialist.
type Agent interface {
	Name() string
	Description() string
	Specializations() []string
	Analyze(ctx context.Context, snippet review.Snippet) (review.AgentResult, error)
}

// Rule is one detection an agent performs. A rule fires on a line when
// Pattern matches and Exclude (if set) does not; the first firing rule wins
// the line.
type Rule struct {
	ID        string
	Principle string
	Pattern   *regexp.Regexp
	Exclude   *regexp.Regexp

	// MatchComments lets a rule see whole-line comments, which are
	// otherwise skipped. Needed for rules about the comments themselves.
	MatchComments bool

	SuggestedCode string
	Reasoning     string
	Explanation   string
	Impact        float64
	Confidence    float64
	Category      string
}

// RuleAgent is the shared agent implementation: a name, a rule table, and a
// line scanner. All built-in agents are RuleAgents with different tables.
type RuleAgent struct {
	name            string
	description     string
	specializations []string
	rules           []Rule
	logger          *logger.Logger
}

// NewRuleAgent creates an agent over the given rule table.
func NewRuleAgent(name, description string, specializations []string, rules []Rule) *RuleAgent {
	return &RuleAgent{
		name:            name,
		description:     description,
		specializations: specializations,
		rules:           rules,
		logger:          logger.GetLogger().WithPrefix(name),
	}
}

func (a *RuleAgent) Name() string        { return a.name }
func (a *RuleAgent) Description() string { return a.description }

// Specializations returns the agent's focus areas.
func (a *RuleAgent) Specializations() []string {
	return append([]string(nil), a.specializations...)
}

// Analyze scans the snippet and returns every rule hit as a suggestion, at
// most one per line.
func (a *RuleAgent) Analyze(ctx context.Context, snippet review.Snippet) (review.AgentResult, error) {
	start := time.Now()

	var suggestions []review.Suggestion
	for i, line := range snippet.Lines {
		if err := ctx.Err(); err != nil {
			return review.AgentResult{}, err
		}

		suggestion, ok, err := a.analyzeLine(line, i+1)
		if err != nil {
			return review.AgentResult{}, errors.AnalysisError(a.name, err)
		}
		if ok {
			suggestions = append(suggestions, suggestion)
		}
	}

	a.logger.Debug("analysis complete (path: %s, lines: %d, suggestions: %d)",
		snippet.Path, len(snippet.Lines), len(suggestions))

	return review.NewAgentResult(a.name, a.description, suggestions, time.Since(start)), nil
}

func (a *RuleAgent) analyzeLine(line string, number int) (review.Suggestion, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return review.Suggestion{}, false, nil
	}
	comment := review.IsCommentLine(line)

	for _, rule := range a.rules {
		if comment && !rule.MatchComments {
			continue
		}
		if !rule.Pattern.MatchString(line) {
			continue
		}
		if rule.Exclude != nil && rule.Exclude.MatchString(line) {
			continue
		}

		suggestion, err := review.NewSuggestion(review.Suggestion{
			ID:                     uuid.NewString(),
			AgentName:              a.name,
			Principle:              rule.Principle,
			LineNumber:             number,
			OriginalCode:           trimmed,
			SuggestedCode:          rule.SuggestedCode,
			Reasoning:              rule.Reasoning,
			EducationalExplanation: rule.Explanation,
			ImpactScore:            rule.Impact,
			Confidence:             rule.Confidence,
			Category:               rule.Category,
		})
		if err != nil {
			return review.Suggestion{}, false, err
		}
		return suggestion, true, nil
	}

	return review.Suggestion{}, false, nil
}
