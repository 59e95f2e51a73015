package collab

import (
	"fmt"
	"strings"

	"github.com/crewreview/crew/pkg/logger"
	"github.com/crewreview/crew/pkg/review"
)

// SuggestionField names the suggestion text field a synergy filter applies to.
type SuggestionField string

const (
	FieldPrinciple SuggestionField = "principle"
	FieldReasoning SuggestionField = "reasoning"
)

// SynergyRule declares one complementary pairing: suggestions from AgentA
// whose FieldA contains KeywordA combine with suggestions from AgentB whose
// FieldB contains KeywordB. Rules are independent and evaluated in order.
type SynergyRule struct {
	Name     string
	AgentA   string
	FieldA   SuggestionField
	KeywordA string
	AgentB   string
	FieldB   SuggestionField
	KeywordB string

	// Bonus scales the summed impact of the combined suggestions; always > 1
	// to express that resolving both together is worth more than either alone.
	Bonus float64

	Description         string
	ImplementationOrder []string
}

// DefaultSynergyRules returns the built-in synergy rule table.
func DefaultSynergyRules() []SynergyRule {
	return []SynergyRule{
		{
			Name:        "secure-caching",
			AgentA:      review.AgentSecurity,
			FieldA:      FieldPrinciple,
			KeywordA:    "validation",
			AgentB:      review.AgentPerformance,
			FieldB:      FieldReasoning,
			KeywordB:    "caching",
			Bonus:       1.2,
			Description: "Implement secure caching: validate inputs before caching to prevent cache poisoning while improving performance",
			ImplementationOrder: []string{
				"Implement input validation",
				"Add caching layer",
				"Combine for secure caching",
			},
		},
		{
			Name:        "strategy-extraction",
			AgentA:      review.AgentCleanCode,
			FieldA:      FieldPrinciple,
			KeywordA:    "responsibility",
			AgentB:      review.AgentDesignPatterns,
			FieldB:      FieldPrinciple,
			KeywordB:    "strategy",
			Bonus:       1.15,
			Description: "Extract responsibilities into Strategy pattern: separate concerns while providing clean extensibility",
			ImplementationOrder: []string{
				"Identify responsibilities",
				"Extract strategies",
				"Implement pattern",
			},
		},
	}
}

// SynergyDetector finds complementary suggestion pairings across agents.
type SynergyDetector struct {
	rules  []SynergyRule
	logger *logger.Logger
}

// NewSynergyDetector creates a synergy detector over the given rules.
func NewSynergyDetector(rules []SynergyRule, log *logger.Logger) *SynergyDetector {
	if log == nil {
		log = logger.GetLogger()
	}
	return &SynergyDetector{
		rules:  rules,
		logger: log.WithPrefix("synergies"),
	}
}

// Detect evaluates every rule against the results. A rule emits one Synergy
// when both candidate sets are non-empty, combining all matched suggestions
// from both sides.
func (sd *SynergyDetector) Detect(results []review.AgentResult) []Synergy {
	var synergies []Synergy

	for _, rule := range sd.rules {
		candidatesA := filterSuggestions(suggestionsByAgent(results, rule.AgentA), rule.FieldA, rule.KeywordA)
		candidatesB := filterSuggestions(suggestionsByAgent(results, rule.AgentB), rule.FieldB, rule.KeywordB)

		if len(candidatesA) == 0 || len(candidatesB) == 0 {
			continue
		}

		combined := append(append([]review.Suggestion{}, candidatesA...), candidatesB...)

		impact := 0.0
		ids := make([]string, 0, len(combined))
		for _, s := range combined {
			impact += s.ImpactScore
			ids = append(ids, s.ID)
		}

		synergies = append(synergies, Synergy{
			ID:                   fmt.Sprintf("synergy_%s_%s", rule.Name, digest(ids)),
			InvolvedAgents:       []string{rule.AgentA, rule.AgentB},
			Suggestions:          combined,
			CombinedImpact:       impact * rule.Bonus,
			SynthesisDescription: rule.Description,
			ImplementationOrder:  rule.ImplementationOrder,
		})
	}

	sd.logger.Debug("synergy detection complete (rules: %d, synergies: %d)", len(sd.rules), len(synergies))

	return synergies
}

func suggestionsByAgent(results []review.AgentResult, agent string) []review.Suggestion {
	for _, result := range results {
		if result.AgentName == agent {
			return result.Suggestions
		}
	}
	return nil
}

func filterSuggestions(suggestions []review.Suggestion, field SuggestionField, keyword string) []review.Suggestion {
	var matched []review.Suggestion
	for _, s := range suggestions {
		text := s.Principle
		if field == FieldReasoning {
			text = s.Reasoning
		}
		if strings.Contains(strings.ToLower(text), keyword) {
			matched = append(matched, s)
		}
	}
	return matched
}
