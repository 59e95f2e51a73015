package agents

import (
	"regexp"

	"github.com/crewreview/crew/pkg/review"
)

// NewTestabilityAgent returns the agent that flags code structures that
// resist isolated, deterministic testing.
func NewTestabilityAgent() *RuleAgent {
	return NewRuleAgent(
		review.AgentTestability,
		"Identifies opportunities to improve code testability and recommends testing best practices including TDD, mocking, and test design",
		[]string{
			"test_driven_development",
			"dependency_injection",
			"test_isolation",
			"mocking_strategies",
			"test_coverage",
			"pure_functions",
			"error_testing",
			"integration_testing",
			"test_maintainability",
			"performance_testing",
		},
		testabilityRules(),
	)
}

func testabilityRules() []Rule {
	return []Rule{
		{
			ID:            "global-state",
			Principle:     "Avoid Global State for Test Isolation",
			Pattern:       regexp.MustCompile(`\bglobal\s+\w+`),
			SuggestedCode: "Hold the state in a struct the test can construct fresh",
			Reasoning:     "Global variables create hidden dependencies between tests and make test isolation impossible",
			Explanation:   "Tests that share a global share its leftovers: pass or fail starts depending on execution order. State owned by an instance dies with the test that created it.",
			Impact:        8.0,
			Confidence:    0.9,
			Category:      "test_isolation",
		},
		{
			ID:            "network-dependency",
			Principle:     "Mock External Services",
			Pattern:       regexp.MustCompile(`(?i)\b(requests\.|urllib|http\.Get|http\.Post|fetch\()`),
			SuggestedCode: "Call the service through an interface and fake it in tests",
			Reasoning:     "Direct network calls make tests slow, unreliable, and dependent on external services",
			Explanation:   "A test that crosses the network inherits the network's failures: timeouts, rate limits, flaky CI. Put the call behind an interface and the test supplies a canned response in microseconds.",
			Impact:        7.5,
			Confidence:    0.9,
			Category:      "mocking_strategies",
		},
		{
			ID:            "hardcoded-construction",
			Principle:     "Dependency Injection for Testability",
			Pattern:       regexp.MustCompile(`=\s*New\w+Client\(|=\s*new\s+\w+Client\(`),
			SuggestedCode: "Inject the client so tests can pass a stub",
			Reasoning:     "Hard-coded object instantiation makes it impossible to substitute mock objects during testing",
			Explanation:   "If the code builds its own client, every test drags the real client along. Injection moves that decision to the caller, and the test caller passes a stub.",
			Impact:        7.0,
			Confidence:    0.8,
			Category:      "dependency_injection",
		},
		{
			ID:            "complex-function",
			Principle:     "Break Down Complex Functions",
			Pattern:       regexp.MustCompile(`\b(func|def|function)\s+\w*(manager|processor|handler)\w*|\b(func|def|function)\s+\w+\s*\(([^)]*,){3,}`),
			SuggestedCode: "Extract the phases into separately testable functions",
			Reasoning:     "Large, complex functions are difficult to test comprehensively and understand",
			Explanation:   "A function doing validation, transformation, and persistence needs the product of all their cases in one test suite. Extracted pieces are each a handful of cases, tested in isolation.",
			Impact:        6.5,
			Confidence:    0.7,
			Category:      "test_coverage",
		},
		{
			ID:            "time-dependency",
			Principle:     "Testable Time Dependencies",
			Pattern:       regexp.MustCompile(`\b(time\.Now|datetime\.now|datetime\.today|Date\.now)\b`),
			SuggestedCode: "Take the clock as a dependency instead of reading it inline",
			Reasoning:     "Direct time dependencies make tests non-deterministic and time-dependent",
			Explanation:   "Code that reads the wall clock behaves differently every run, and edge cases like midnight or leap days become untestable. Inject a clock function and tests pin time exactly.",
			Impact:        6.0,
			Confidence:    0.9,
			Category:      "pure_functions",
		},
		{
			ID:            "filesystem-dependency",
			Principle:     "Abstract File Operations for Testing",
			Pattern:       regexp.MustCompile(`(?i)\bopen\s*\(|\.ReadFile\(|\.WriteFile\(|\.read\(\)|\.write\(`),
			SuggestedCode: "Accept an io.Reader or filesystem abstraction",
			Reasoning:     "Direct file operations make tests dependent on the file system and harder to isolate",
			Explanation:   "File-touching code forces tests to create real files and clean them up, and fails differently per machine. Reading from an abstraction lets tests hand over an in-memory buffer.",
			Impact:        6.0,
			Confidence:    0.8,
			Category:      "mocking_strategies",
		},
		{
			ID:            "complex-boolean",
			Principle:     "Comprehensive Testing of Complex Logic",
			Pattern:       regexp.MustCompile(`(?i)\bif\b.*\b(and|&&)\b.*\b(or|\|\|)\b|\bif\b.*\b(or|\|\|)\b.*\b(and|&&)\b`),
			SuggestedCode: "Name the sub-conditions and test them individually",
			Reasoning:     "Complex boolean expressions require many test cases to ensure all logical paths are covered",
			Explanation:   "Mixed and/or expressions hide precedence decisions and need a truth-table of tests to cover. Extracting each clause into a named predicate makes the intent visible and each piece cheap to test.",
			Impact:        5.0,
			Confidence:    0.8,
			Category:      "test_coverage",
		},
	}
}
