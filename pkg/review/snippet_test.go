package review

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "go", DetectLanguage("main.go"))
	assert.Equal(t, "python", DetectLanguage("/srv/app/server.py"))
	assert.Equal(t, "typescript", DetectLanguage("index.TS"))
	assert.Equal(t, "plaintext", DetectLanguage("Makefile"))
}

func TestNewSnippet(t *testing.T) {
	s := NewSnippet("auth.py", "import os\npassword = \"hunter2\"\n")

	assert.Equal(t, "python", s.Language)
	assert.Len(t, s.Lines, 3)
	assert.Equal(t, "import os", s.Lines[0])
}

func TestLoadSnippet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0600))

	s, err := LoadSnippet(path)
	require.NoError(t, err)
	assert.Equal(t, "go", s.Language)
	assert.Equal(t, path, s.Path)

	_, err = LoadSnippet(filepath.Join(dir, "missing.go"))
	assert.Error(t, err)
}

func TestIsCommentLine(t *testing.T) {
	assert.True(t, IsCommentLine(""))
	assert.True(t, IsCommentLine("   "))
	assert.True(t, IsCommentLine("// trailing"))
	assert.True(t, IsCommentLine("  # python comment"))
	assert.False(t, IsCommentLine("x := 1 // inline"))
	assert.False(t, IsCommentLine("total += n"))
}
