package review

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/crewreview/crew/pkg/errors"
)

// Snippet is the unit of source handed to the agents: one file's content
// split into lines, with a best-effort language tag.
type Snippet struct {
	Path     string   `json:"path,omitempty"`
	Language string   `json:"language"`
	Source   string   `json:"-"`
	Lines    []string `json:"-"`
}

// NewSnippet wraps raw source text in a Snippet.
func NewSnippet(path, source string) Snippet {
	return Snippet{
		Path:     path,
		Language: DetectLanguage(path),
		Source:   source,
		Lines:    strings.Split(source, "\n"),
	}
}

// LoadSnippet reads a source file from disk.
func LoadSnippet(path string) (Snippet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // reviewing user-named files is the point
	if err != nil {
		return Snippet{}, errors.FileSystemError(path, err)
	}
	return NewSnippet(path, string(data)), nil
}

var languageByExtension = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".java": "java",
	".rb":   "ruby",
	".rs":   "rust",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".cs":   "csharp",
	".php":  "php",
	".kt":   "kotlin",
	".sh":   "shell",
}

// DetectLanguage maps a file extension to a language tag, defaulting to
// "plaintext" for anything unrecognised.
func DetectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageByExtension[ext]; ok {
		return lang
	}
	return "plaintext"
}

// IsCommentLine reports whether a trimmed line is blank or a whole-line
// comment and can be skipped by line-oriented rules.
func IsCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	return strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#")
}
