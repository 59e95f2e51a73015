package agents

import (
	"regexp"

	"github.com/crewreview/crew/pkg/review"
)

// NewSecurityAgent returns the agent that scans for common vulnerability
// patterns: hardcoded secrets, injection, weak randomness, unsafe paths.
func NewSecurityAgent() *RuleAgent {
	return NewRuleAgent(
		review.AgentSecurity,
		"Identifies security vulnerabilities and recommends secure coding practices based on OWASP Top 10 and security best practices",
		[]string{
			"injection_vulnerabilities",
			"authentication_security",
			"xss_prevention",
			"access_control",
			"data_encryption",
			"input_validation",
			"secure_configuration",
			"dependency_security",
			"secret_management",
			"error_handling_security",
		},
		securityRules(),
	)
}

func securityRules() []Rule {
	return []Rule{
		{
			ID:            "hardcoded-secret",
			Principle:     "Secure Secret Management",
			Pattern:       regexp.MustCompile(`(?i)(password|secret|key|token)\s*[:=]{1,2}\s*["'][^"']+["']`),
			SuggestedCode: "Load secrets from the environment or a secret manager",
			Reasoning:     "Hardcoded secrets in source code can be exposed through version control, logs, or code sharing",
			Explanation:   "A secret committed once lives forever in history, in every clone, and in every CI log that prints the file. Inject secrets at runtime and rotate anything that has already been committed.",
			Impact:        9.0,
			Confidence:    0.95,
			Category:      "secrets",
		},
		{
			ID:            "sql-injection",
			Principle:     "SQL Injection Prevention",
			Pattern:       regexp.MustCompile(`(?i)(query|execute|cursor)\s*\(.*(\+|%s|%v)`),
			SuggestedCode: "Use parameterized queries with placeholder arguments",
			Reasoning:     "String concatenation or formatting in SQL queries enables SQL injection attacks",
			Explanation:   "Building SQL from user text lets the user write SQL. Placeholders keep data and query structurally separate, so the database never interprets input as commands.",
			Impact:        9.5,
			Confidence:    0.85,
			Category:      "injection",
		},
		{
			ID:            "code-injection",
			Principle:     "Code Injection Prevention",
			Pattern:       regexp.MustCompile(`\b(eval|exec)\s*\(`),
			SuggestedCode: "Replace dynamic evaluation with explicit dispatch on known values",
			Reasoning:     "eval() and exec() execute arbitrary code and can lead to code injection vulnerabilities",
			Explanation:   "Dynamic evaluation turns any attacker-influenced string into a program running with your privileges. Explicit lookup tables or switch statements handle the legitimate cases without the open door.",
			Impact:        9.0,
			Confidence:    0.9,
			Category:      "injection",
		},
		{
			ID:            "weak-random",
			Principle:     "Cryptographically Secure Random Numbers",
			Pattern:       regexp.MustCompile(`(?i)\b(math/rand|random\.(random|choice|randint)|Math\.random)\b`),
			SuggestedCode: "Use the platform's cryptographic random source for security decisions",
			Reasoning:     "General-purpose random number generators are predictable and unsuitable for security use",
			Explanation:   "Pseudo-random generators are seeded from small, guessable state; tokens and keys drawn from them can be reproduced by an attacker. Security-sensitive values must come from a CSPRNG.",
			Impact:        7.0,
			Confidence:    0.8,
			Category:      "cryptography",
		},
		{
			ID:            "path-traversal",
			Principle:     "Path Traversal Prevention",
			Pattern:       regexp.MustCompile(`(?i)(open\s*\(.*(user|request)|path\s*\+)`),
			SuggestedCode: "Resolve the path and verify it stays inside the allowed root",
			Reasoning:     "User-controlled file paths can lead to path traversal attacks accessing unauthorized files",
			Explanation:   "A path containing '..' escapes whatever directory you prepended. Canonicalize the full path first, then check it is still under the intended root before touching the file system.",
			Impact:        8.0,
			Confidence:    0.75,
			Category:      "access_control",
		},
		{
			ID:            "unvalidated-input",
			Principle:     "Input Validation",
			Pattern:       regexp.MustCompile(`(?i)(request\.(args|form|body|params|GET|POST)|r\.URL\.Query|req\.query|req\.body)`),
			SuggestedCode: "Validate and normalize the value before using it",
			Reasoning:     "Request values are attacker-controlled and must be validated before use",
			Explanation:   "Everything arriving over the wire is untrusted: wrong type, wrong range, hostile content. Validate at the boundary once so the rest of the code can rely on the invariant.",
			Impact:        7.5,
			Confidence:    0.7,
			Category:      "input_validation",
		},
		{
			ID:            "debug-enabled",
			Principle:     "Secure Configuration",
			Pattern:       regexp.MustCompile(`(?i)debug\s*[:=]{1,2}\s*true`),
			SuggestedCode: "Drive debug mode from configuration, defaulting to off",
			Reasoning:     "Debug mode enabled in production exposes sensitive information and debugging tools",
			Explanation:   "Debug surfaces leak stack traces, internal paths, and sometimes interactive consoles. Production builds must default the flag off and require explicit opt-in per environment.",
			Impact:        6.0,
			Confidence:    0.9,
			Category:      "configuration",
		},
	}
}
