package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewreview/crew/pkg/review"
)

// analyzeLines runs an agent over the given lines and returns the fired
// rule principles keyed by line number.
func analyzeLines(t *testing.T, agent Agent, lines ...string) map[int]review.Suggestion {
	t.Helper()

	snippet := review.NewSnippet("sample.py", strings.Join(lines, "\n"))
	result, err := agent.Analyze(context.Background(), snippet)
	require.NoError(t, err)

	byLine := make(map[int]review.Suggestion, len(result.Suggestions))
	for _, s := range result.Suggestions {
		byLine[s.LineNumber] = s
	}
	return byLine
}

func TestCleanCodeAgentRules(t *testing.T) {
	hits := analyzeLines(t, NewCleanCodeAgent(),
		"def calculate_and_send_monthly_report_email():",
		"def send(a1, b2, c3, d4, e5):",
		"temp = compute()",
		"x = 5",
		"i = 0",
		"// TODO: rewrite this",
	)

	assert.Equal(t, "Meaningful Names - Function Length", hits[1].Principle)
	assert.Equal(t, "Function Parameters", hits[2].Principle)
	assert.Equal(t, "Meaningful Names - Avoid Generic Names", hits[3].Principle)
	assert.Equal(t, "Meaningful Names - Single Letter Variables", hits[4].Principle)
	assert.NotContains(t, hits, 5, "loop index names are conventional")
	assert.Equal(t, "Code Debt Comments", hits[6].Principle)
}

func TestCleanCodeAgentSkipsPlainComments(t *testing.T) {
	hits := analyzeLines(t, NewCleanCodeAgent(),
		"# data cleanup happens nightly",
		"",
	)

	assert.Empty(t, hits)
}

func TestSecurityAgentRules(t *testing.T) {
	hits := analyzeLines(t, NewSecurityAgent(),
		`password = "hunter2"`,
		`cursor.execute("SELECT * FROM users WHERE id = " + user_id)`,
		"eval(payload)",
		"nonce = random.randint(0, 9999)",
		"f = open(base_path + user_provided)",
		`name = request.args.get("name")`,
		"DEBUG = True",
	)

	assert.Equal(t, "Secure Secret Management", hits[1].Principle)
	assert.Equal(t, "SQL Injection Prevention", hits[2].Principle)
	assert.Equal(t, "Code Injection Prevention", hits[3].Principle)
	assert.Equal(t, "Cryptographically Secure Random Numbers", hits[4].Principle)
	assert.Equal(t, "Path Traversal Prevention", hits[5].Principle)
	assert.Equal(t, "Input Validation", hits[6].Principle)
	assert.Equal(t, "Secure Configuration", hits[7].Principle)

	assert.Equal(t, review.SeverityCritical, hits[1].Severity)
	assert.Equal(t, review.SeverityCritical, hits[2].Severity)
}

func TestPerformanceAgentRules(t *testing.T) {
	hits := analyzeLines(t, NewPerformanceAgent(),
		"for user in users: row = db.query(user.id)",
		"for left in a: for right in b:",
		"for batch in batches: records.sort()",
		`report += "line"`,
		"if status in [1, 2, 3]:",
		"while count < len(queue):",
	)

	assert.Equal(t, "Database Performance - N+1 Query Problem", hits[1].Principle)
	assert.Equal(t, "Algorithmic Complexity - Nested Loops", hits[2].Principle)
	assert.Equal(t, "Algorithm Optimization - Repeated Sorting", hits[3].Principle)
	assert.Equal(t, "String Optimization - Concatenation", hits[4].Principle)
	assert.Equal(t, "Data Structure Efficiency - Membership Testing", hits[5].Principle)
	assert.Equal(t, "Function Call Optimization - Repeated Length Checks", hits[6].Principle)

	assert.Equal(t, review.SeverityCritical, hits[1].Severity)
	assert.Equal(t, review.SeverityLow, hits[6].Severity)
}

func TestDesignPatternsAgentRules(t *testing.T) {
	hits := analyzeLines(t, NewDesignPatternsAgent(),
		"type SessionManager struct {",
		"global counter",
		`if role == "admin" and region == "eu":`,
		"if isinstance(shape, Circle):",
		"svc = NewMailer()",
		"cfg = conn.builder().withHost(h).withPort(p).withTimeout(d)",
	)

	assert.Equal(t, "Single Responsibility Principle (SRP)", hits[1].Principle)
	assert.Equal(t, "Singleton Pattern or Dependency Injection", hits[2].Principle)
	assert.Equal(t, "Strategy Pattern", hits[3].Principle)
	assert.Equal(t, "Polymorphism over Type Checking", hits[4].Principle)
	assert.Equal(t, "Dependency Inversion Principle (DIP)", hits[5].Principle)
	assert.Equal(t, "Builder Pattern", hits[6].Principle)
}

func TestTestabilityAgentRules(t *testing.T) {
	hits := analyzeLines(t, NewTestabilityAgent(),
		"global cache",
		"resp = requests.get(url)",
		"client = NewPaymentClient()",
		"now = time.Now()",
		`f = open("config.yaml")`,
		"if ready and (force or retry):",
		"def payment_report_handler():",
	)

	assert.Equal(t, "Avoid Global State for Test Isolation", hits[1].Principle)
	assert.Equal(t, "Mock External Services", hits[2].Principle)
	assert.Equal(t, "Dependency Injection for Testability", hits[3].Principle)
	assert.Equal(t, "Testable Time Dependencies", hits[4].Principle)
	assert.Equal(t, "Abstract File Operations for Testing", hits[5].Principle)
	assert.Equal(t, "Comprehensive Testing of Complex Logic", hits[6].Principle)
	assert.Equal(t, "Break Down Complex Functions", hits[7].Principle)
}

func TestAgentOneSuggestionPerLine(t *testing.T) {
	// Matches both the hardcoded-secret and secure-configuration rules;
	// the earlier table entry wins.
	hits := analyzeLines(t, NewSecurityAgent(),
		`secret = "debug=true"`,
	)

	require.Len(t, hits, 1)
	assert.Equal(t, "Secure Secret Management", hits[1].Principle)
}

func TestAgentSuggestionFields(t *testing.T) {
	agent := NewSecurityAgent()
	snippet := review.NewSnippet("app.go", `apiKey := "sk-live-1234"`)

	result, err := agent.Analyze(context.Background(), snippet)
	require.NoError(t, err)
	require.Len(t, result.Suggestions, 1)

	s := result.Suggestions[0]
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, review.AgentSecurity, s.AgentName)
	assert.Equal(t, 1, s.LineNumber)
	assert.Equal(t, `apiKey := "sk-live-1234"`, s.OriginalCode)
	assert.NotEmpty(t, s.Reasoning)
	assert.NotEmpty(t, s.EducationalExplanation)
	assert.Equal(t, "secrets", s.Category)

	assert.Equal(t, 1, result.TotalIssues)
	assert.Equal(t, 1, result.SeverityBreakdown[review.SeverityCritical])
}

func TestAgentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSecurityAgent().Analyze(ctx, review.NewSnippet("app.go", "x := 1"))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAgentMetadata(t *testing.T) {
	for _, agent := range DefaultAgents() {
		assert.NotEmpty(t, agent.Name())
		assert.NotEmpty(t, agent.Description())
		assert.NotEmpty(t, agent.Specializations())
	}
}
