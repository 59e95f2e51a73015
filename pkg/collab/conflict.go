package collab

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/crewreview/crew/pkg/logger"
	"github.com/crewreview/crew/pkg/review"
)

// ConflictPattern is a declarative description of a philosophical
// disagreement between two agents: each side of the trade-off has a named
// keyword group, and a suggestion joins the conflict when its text matches
// any keyword from either group.
type ConflictPattern struct {
	Name   string
	Agents [2]string
	Groups []KeywordGroup
}

// KeywordGroup names one side of a philosophical trade-off.
type KeywordGroup struct {
	Philosophy string
	Keywords   []string
}

// DefaultConflictPatterns returns the built-in philosophical conflict table.
func DefaultConflictPatterns() []ConflictPattern {
	return []ConflictPattern{
		{
			Name:   "Performance vs Readability",
			Agents: [2]string{review.AgentPerformance, review.AgentCleanCode},
			Groups: []KeywordGroup{
				{Philosophy: "performance", Keywords: []string{"optimization", "efficiency", "speed", "inline", "loop"}},
				{Philosophy: "readability", Keywords: []string{"readable", "maintainable", "extract", "clear", "naming"}},
			},
		},
		{
			Name:   "Security vs Usability",
			Agents: [2]string{review.AgentSecurity, review.AgentCleanCode},
			Groups: []KeywordGroup{
				{Philosophy: "security", Keywords: []string{"validation", "sanitization", "encryption", "secure"}},
				{Philosophy: "usability", Keywords: []string{"simple", "user-friendly", "convenient"}},
			},
		},
		{
			Name:   "Abstraction vs Simplicity",
			Agents: [2]string{review.AgentDesignPatterns, review.AgentCleanCode},
			Groups: []KeywordGroup{
				{Philosophy: "abstraction", Keywords: []string{"pattern", "interface", "abstract", "polymorphism"}},
				{Philosophy: "simplicity", Keywords: []string{"simple", "straightforward", "direct"}},
			},
		},
	}
}

// Classifier decides which philosophical patterns a suggestion's text
// matches. It exists as a seam so the keyword heuristic can be swapped for
// something more principled without touching detection control flow.
type Classifier interface {
	Match(text string) []string
}

// keywordClassifier is the default Classifier: case-insensitive substring
// matching against each pattern's keyword groups.
type keywordClassifier struct {
	patterns []ConflictPattern
}

// NewKeywordClassifier builds the default substring classifier over the
// given patterns.
func NewKeywordClassifier(patterns []ConflictPattern) Classifier {
	return &keywordClassifier{patterns: patterns}
}

func (kc *keywordClassifier) Match(text string) []string {
	lowered := strings.ToLower(text)

	var matched []string
	for _, pattern := range kc.patterns {
		for _, group := range pattern.Groups {
			if containsAny(lowered, group.Keywords) {
				matched = append(matched, pattern.Name)
				break
			}
		}
	}
	return matched
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Detector finds conflicts between agent result batches. It never mutates
// its input.
type Detector struct {
	patterns   []ConflictPattern
	classifier Classifier
	logger     *logger.Logger
}

// NewDetector creates a conflict detector over the given patterns. A nil
// classifier selects the default keyword classifier.
func NewDetector(patterns []ConflictPattern, classifier Classifier, log *logger.Logger) *Detector {
	if classifier == nil {
		classifier = NewKeywordClassifier(patterns)
	}
	if log == nil {
		log = logger.GetLogger()
	}
	return &Detector{
		patterns:   patterns,
		classifier: classifier,
		logger:     log.WithPrefix("conflicts"),
	}
}

// Detect returns all line-level and philosophical conflicts across the given
// results. Output is deterministic for identical input: results are walked
// in order, grouped lines are visited in ascending order, and conflict ids
// are digests of the involved lines and agents.
func (d *Detector) Detect(results []review.AgentResult) []Conflict {
	var conflicts []Conflict

	byLine := make(map[int][]review.Suggestion)
	var all []review.Suggestion

	for _, result := range results {
		for _, s := range result.Suggestions {
			all = append(all, s)
			if s.LineNumber > 0 {
				byLine[s.LineNumber] = append(byLine[s.LineNumber], s)
			}
		}
	}

	lines := make([]int, 0, len(byLine))
	for line := range byLine {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	for _, line := range lines {
		grouped := byLine[line]
		if len(grouped) < 2 {
			continue
		}
		if conflict, ok := d.analyzeLineConflict(line, grouped); ok {
			conflicts = append(conflicts, conflict)
		}
	}

	conflicts = append(conflicts, d.detectPhilosophical(all)...)

	d.logger.Debug("conflict detection complete (line_groups: %d, conflicts: %d)", len(lines), len(conflicts))

	return conflicts
}

// analyzeLineConflict classifies a group of suggestions anchored to the same
// line. At least two suggestions must carry code for a conflict to exist.
func (d *Detector) analyzeLineConflict(line int, grouped []review.Suggestion) (Conflict, bool) {
	var codes []string
	distinct := make(map[string]struct{})
	for _, s := range grouped {
		if s.SuggestedCode != "" {
			codes = append(codes, s.SuggestedCode)
			distinct[s.SuggestedCode] = struct{}{}
		}
	}

	var conflictType ConflictType
	var description string

	switch {
	case len(distinct) > 1:
		conflictType = ConflictContradictory
		description = fmt.Sprintf("Multiple agents suggest different code changes for line %d", line)
	case len(codes) > 1:
		conflictType = ConflictOverlapping
		description = fmt.Sprintf("Multiple agents target the same issue on line %d", line)
	default:
		return Conflict{}, false
	}

	agents := agentNames(grouped)
	impact := 0.0
	for _, s := range grouped {
		if s.ImpactScore > impact {
			impact = s.ImpactScore
		}
	}

	return Conflict{
		ID:               fmt.Sprintf("line_%d_%s", line, digest(agents)),
		Type:             conflictType,
		InvolvedAgents:   agents,
		Suggestions:      grouped,
		LineNumber:       line,
		Description:      description,
		ImpactAssessment: impact,
	}, true
}

// detectPhilosophical emits at most one conflict per pattern; a pattern
// fires when matching suggestions come from at least two distinct agents.
func (d *Detector) detectPhilosophical(all []review.Suggestion) []Conflict {
	var conflicts []Conflict

	for _, pattern := range d.patterns {
		var involved []review.Suggestion
		for _, s := range all {
			if s.AgentName != pattern.Agents[0] && s.AgentName != pattern.Agents[1] {
				continue
			}
			text := s.Principle + " " + s.Reasoning + " " + s.EducationalExplanation
			if matchesPattern(d.classifier.Match(text), pattern.Name) {
				involved = append(involved, s)
			}
		}

		agents := agentNames(involved)
		if len(agents) < 2 {
			continue
		}

		total := 0.0
		for _, s := range involved {
			total += s.ImpactScore
		}

		conflicts = append(conflicts, Conflict{
			ID:               fmt.Sprintf("philosophical_%s_%s", strings.ReplaceAll(pattern.Name, " ", "_"), digest(agents)),
			Type:             ConflictPhilosophical,
			InvolvedAgents:   agents,
			Suggestions:      involved,
			Description:      fmt.Sprintf("Philosophical conflict: %s", pattern.Name),
			ImpactAssessment: total / float64(len(involved)),
		})
	}

	return conflicts
}

func matchesPattern(matched []string, name string) bool {
	for _, m := range matched {
		if m == name {
			return true
		}
	}
	return false
}

// agentNames returns the distinct agent names in first-occurrence order.
func agentNames(suggestions []review.Suggestion) []string {
	seen := make(map[string]struct{}, len(suggestions))
	var names []string
	for _, s := range suggestions {
		if _, ok := seen[s.AgentName]; ok {
			continue
		}
		seen[s.AgentName] = struct{}{}
		names = append(names, s.AgentName)
	}
	return names
}

// digest produces a short stable id fragment from a list of strings.
func digest(parts []string) string {
	h := fnv.New32a()
	for _, p := range parts {
		_, _ = h.Write([]byte(p)) //nolint:errcheck // fnv writes cannot fail
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%04x", h.Sum32()%0x10000)
}
