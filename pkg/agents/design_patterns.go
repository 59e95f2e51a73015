package agents

import (
	"regexp"

	"github.com/crewreview/crew/pkg/review"
)

// NewDesignPatternsAgent returns the agent that looks for SOLID violations
// and pattern opportunities.
func NewDesignPatternsAgent() *RuleAgent {
	return NewRuleAgent(
		review.AgentDesignPatterns,
		"Identifies opportunities for design patterns and architectural improvements based on Gang of Four patterns and SOLID principles",
		[]string{
			"solid_principles",
			"creational_patterns",
			"structural_patterns",
			"behavioral_patterns",
			"anti_patterns",
			"dependency_injection",
			"composition_over_inheritance",
			"architectural_patterns",
			"code_organization",
			"abstraction_design",
		},
		designPatternsRules(),
	)
}

func designPatternsRules() []Rule {
	return []Rule{
		{
			ID:            "large-class",
			Principle:     "Single Responsibility Principle (SRP)",
			Pattern:       regexp.MustCompile(`(?i)\b(class|type)\s+\w*(manager|service|processor|handler)\w*`),
			SuggestedCode: "Split into smaller types, each owning one concern",
			Reasoning:     "Large classes often violate Single Responsibility Principle by handling multiple concerns",
			Explanation:   "A 'Manager' or 'Service' name is a tell: the type has collected unrelated jobs. Each extra responsibility is an extra reason the type must change, and changes for one concern risk the others. Split along the concerns.",
			Impact:        7.0,
			Confidence:    0.75,
			Category:      "solid_principles",
		},
		{
			ID:            "global-state",
			Principle:     "Singleton Pattern or Dependency Injection",
			Pattern:       regexp.MustCompile(`\bglobal\s+\w+`),
			SuggestedCode: "Pass the dependency in explicitly instead of reaching for a global",
			Reasoning:     "Global variables create hidden dependencies and make testing difficult",
			Explanation:   "A global is an invisible parameter to every function that touches it: callers cannot see the dependency and tests cannot substitute it. Make the dependency explicit in the constructor or signature.",
			Impact:        7.0,
			Confidence:    0.8,
			Category:      "creational_patterns",
		},
		{
			ID:            "conditional-strategy",
			Principle:     "Strategy Pattern",
			Pattern:       regexp.MustCompile(`(?i)\b(if|elif|else if)\b.*==.*\b(and|&&)\b.*==`),
			SuggestedCode: "Replace the conditional ladder with a strategy per variant",
			Reasoning:     "Complex conditional logic can be replaced with Strategy pattern for better extensibility",
			Explanation:   "A ladder of compound equality checks re-derives the variant on every call and grows a branch per new case. Dispatching to an interface implementation per variant makes adding a case a new type, not an edit to shared logic.",
			Impact:        6.5,
			Confidence:    0.8,
			Category:      "behavioral_patterns",
		},
		{
			ID:            "type-switching",
			Principle:     "Polymorphism over Type Checking",
			Pattern:       regexp.MustCompile(`\bisinstance\s*\(|\btype\s*\(.*\)\s*==|\binstanceof\b`),
			SuggestedCode: "Move the behavior onto the types and call it through an interface",
			Reasoning:     "Type checking often indicates missing polymorphism - objects should know how to behave",
			Explanation:   "When code inspects a value's type to decide behavior, the behavior lives in the wrong place. Give each type the method and let dispatch do the branching; new types then work without touching existing call sites.",
			Impact:        6.0,
			Confidence:    0.85,
			Category:      "structural_patterns",
		},
		{
			ID:            "hardcoded-construction",
			Principle:     "Dependency Inversion Principle (DIP)",
			Pattern:       regexp.MustCompile(`=\s*New\w+\(|=\s*new\s+\w+\(`),
			SuggestedCode: "Accept the collaborator through the constructor instead of building it inline",
			Reasoning:     "Hard-coded object instantiation creates tight coupling and makes testing difficult",
			Explanation:   "Constructing a collaborator inline welds the concrete type to this code path, so tests get the real dependency whether they want it or not. Accept it as a parameter and the caller chooses.",
			Impact:        6.0,
			Confidence:    0.7,
			Category:      "dependency_injection",
		},
		{
			ID:            "long-method-chain",
			Principle:     "Builder Pattern",
			Pattern:       regexp.MustCompile(`\w+(\.\w+\([^)]*\)){3,}`),
			SuggestedCode: "Introduce a builder for the multi-step construction",
			Reasoning:     "Long method chains for object construction can be simplified with Builder pattern",
			Explanation:   "A long dotted chain binds this code to the intermediate shapes of every link. A builder names the steps, validates once at Build, and leaves one place to change when construction grows.",
			Impact:        5.0,
			Confidence:    0.7,
			Category:      "creational_patterns",
		},
	}
}
