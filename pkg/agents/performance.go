package agents

import (
	"regexp"

	"github.com/crewreview/crew/pkg/review"
)

// NewPerformanceAgent returns the agent that hunts algorithmic and resource
// inefficiencies.
func NewPerformanceAgent() *RuleAgent {
	return NewRuleAgent(
		review.AgentPerformance,
		"Identifies performance bottlenecks, algorithmic inefficiencies, and recommends optimizations for better speed, memory usage, and scalability",
		[]string{
			"algorithmic_complexity",
			"memory_optimization",
			"database_performance",
			"io_optimization",
			"caching_strategies",
			"data_structures",
			"string_optimization",
			"loop_optimization",
			"function_overhead",
			"resource_management",
		},
		performanceRules(),
	)
}

func performanceRules() []Rule {
	return []Rule{
		{
			ID:            "n-plus-one-query",
			Principle:     "Database Performance - N+1 Query Problem",
			Pattern:       regexp.MustCompile(`(?i)\bfor\b.*\b(query|select)\b`),
			SuggestedCode: "Fetch related rows in one query with a join or batch lookup",
			Reasoning:     "Executing queries inside loops creates N+1 query problems, drastically increasing database load",
			Explanation:   "Fetching a list and then one extra query per element turns 1 round-trip into N+1. For a hundred rows that is a hundred extra network hops, and round-trips dominate latency. Load the related data up front with a join or a batched IN query.",
			Impact:        9.0,
			Confidence:    0.8,
			Category:      "database_performance",
		},
		{
			ID:            "nested-loops",
			Principle:     "Algorithmic Complexity - Nested Loops",
			Pattern:       regexp.MustCompile(`(?i)\bfor\b.*\bfor\b|\bwhile\b.*\bwhile\b`),
			SuggestedCode: "Index one side in a map so the inner scan becomes a lookup",
			Reasoning:     "Nested loops often indicate O(n squared) time complexity which becomes problematic with larger datasets",
			Explanation:   "Quadratic loops double the data and quadruple the work: a thousand items already means a million iterations. A map built in one pass turns the inner search into a constant-time lookup.",
			Impact:        8.0,
			Confidence:    0.8,
			Category:      "algorithmic_complexity",
		},
		{
			ID:            "sort-in-loop",
			Principle:     "Algorithm Optimization - Repeated Sorting",
			Pattern:       regexp.MustCompile(`(?i)(\.sort\(\)|sorted\()\S*.*\bfor\b|\bfor\b.*(\.sort\(\)|sorted\()`),
			SuggestedCode: "Sort once before the loop, or keep the data in an ordered structure",
			Reasoning:     "Sorting inside loops repeats expensive O(n log n) operations unnecessarily",
			Explanation:   "Sorting costs n log n; doing it every iteration multiplies that by the loop count for the same result. Sort once up front, or use a heap if elements arrive while you iterate.",
			Impact:        7.5,
			Confidence:    0.9,
			Category:      "algorithmic_complexity",
		},
		{
			ID:            "string-concat-loop",
			Principle:     "String Optimization - Concatenation",
			Pattern:       regexp.MustCompile(`\+=\s*["']|\+=\s*\w*[Ss]tr|["']\s*\+\s*\w+\s*\+\s*["']`),
			SuggestedCode: "Accumulate parts in a builder or slice and join once",
			Reasoning:     "Repeated string concatenation copies the whole accumulated string each time, approaching quadratic cost",
			Explanation:   "Strings are immutable, so every concatenation allocates a new string and copies everything accumulated so far. Across a loop the copies sum to quadratic work. A builder grows amortized linearly and joins once at the end.",
			Impact:        7.0,
			Confidence:    0.9,
			Category:      "string_optimization",
		},
		{
			ID:            "list-membership",
			Principle:     "Data Structure Efficiency - Membership Testing",
			Pattern:       regexp.MustCompile(`\bin\s+\[`),
			SuggestedCode: "Use a set or map for membership checks",
			Reasoning:     "Membership testing in lists is O(n), while sets and maps provide O(1) average case",
			Explanation:   "A list membership check scans elements one by one; a hash-based set answers in constant time regardless of size. When the same collection is probed repeatedly, build the set once.",
			Impact:        6.0,
			Confidence:    0.85,
			Category:      "data_structures",
		},
		{
			ID:            "repeated-length-call",
			Principle:     "Function Call Optimization - Repeated Length Checks",
			Pattern:       regexp.MustCompile(`(?i)len\(.*\).*\b(for|while)\b|\b(for|while)\b.*len\(`),
			SuggestedCode: "Cache the length in a variable before the loop",
			Reasoning:     "Repeated function calls in loop conditions are unnecessary overhead",
			Explanation:   "Calling a length function in the loop condition repeats the lookup every iteration. Caching it once costs one line and also names what the bound means.",
			Impact:        3.0,
			Confidence:    0.7,
			Category:      "function_overhead",
		},
	}
}
