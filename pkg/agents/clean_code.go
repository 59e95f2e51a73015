package agents

import (
	"regexp"

	"github.com/crewreview/crew/pkg/review"
)

// NewCleanCodeAgent returns the agent that reviews naming, function size,
// and structural readability.
func NewCleanCodeAgent() *RuleAgent {
	return NewRuleAgent(
		review.AgentCleanCode,
		"Applies Clean Code principles focusing on meaningful names, small functions, single responsibility, and code readability",
		[]string{
			"meaningful_names",
			"function_size",
			"single_responsibility",
			"dry_principle",
			"comments",
			"error_handling",
			"code_structure",
			"function_parameters",
		},
		cleanCodeRules(),
	)
}

func cleanCodeRules() []Rule {
	return []Rule{
		{
			ID:            "long-function-name",
			Principle:     "Meaningful Names - Function Length",
			Pattern:       regexp.MustCompile(`(?i)\b(func|def|function)\s+\S{20,}`),
			SuggestedCode: "Shorten the name and split the function by responsibility",
			Reasoning:     "Function name is very long, which may indicate it's doing too much",
			Explanation:   "A name that needs twenty-plus characters to describe a function usually describes several jobs at once. Split the function so each piece earns a short, precise name.",
			Impact:        6.0,
			Confidence:    0.8,
			Category:      "naming",
		},
		{
			ID:            "too-many-parameters",
			Principle:     "Function Parameters",
			Pattern:       regexp.MustCompile(`\b(func|def|function)\s+\w+\s*\(([^)]*,){4,}`),
			SuggestedCode: "Group related parameters into a struct or options type",
			Reasoning:     "Function has too many parameters (5+), making it hard to understand and test",
			Explanation:   "Every parameter multiplies the combinations a caller and a test must consider. Past three or four, the parameters usually belong together as a named type.",
			Impact:        7.0,
			Confidence:    0.9,
			Category:      "structure",
		},
		{
			ID:            "generic-names",
			Principle:     "Meaningful Names - Avoid Generic Names",
			Pattern:       regexp.MustCompile(`(?i)\b(temp|tmp|data|info|obj|item)\b`),
			SuggestedCode: "Rename to say what the value is, not that it exists",
			Reasoning:     "Generic variable names like 'temp', 'data', 'info' don't reveal intention",
			Explanation:   "Names such as 'data' or 'info' describe every variable in the program equally well, which means they describe none. Name the thing after its role: 'pendingOrders', 'retryDelay'.",
			Impact:        5.0,
			Confidence:    0.7,
			Category:      "naming",
		},
		{
			ID:            "single-letter-names",
			Principle:     "Meaningful Names - Single Letter Variables",
			Pattern:       regexp.MustCompile(`\b[a-z]\b`),
			Exclude:       regexp.MustCompile(`\b[ijk]\b`),
			SuggestedCode: "Use a word that states the variable's meaning",
			Reasoning:     "Single letter variable names don't convey meaning",
			Explanation:   "Outside of conventional loop indices, a single letter makes the reader reconstruct meaning from context every time the variable appears. A short word costs nothing and reads instantly.",
			Impact:        4.0,
			Confidence:    0.6,
			Category:      "naming",
		},
		{
			ID:            "debt-comments",
			Principle:     "Code Debt Comments",
			Pattern:       regexp.MustCompile(`(?i)(//|#).*(TODO|FIXME|HACK)`),
			MatchComments: true,
			SuggestedCode: "Resolve the marked issue or track it in the issue tracker",
			Reasoning:     "TODO/FIXME comments indicate incomplete or problematic code",
			Explanation:   "Debt markers rot in place: nobody is notified, nothing is scheduled, and the next reader cannot tell whether the note is still true. Either fix it now or move it somewhere with an owner.",
			Impact:        6.0,
			Confidence:    0.8,
			Category:      "structure",
		},
	}
}
