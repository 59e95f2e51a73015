package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBuilder(t *testing.T) {
	err := NewError(ErrorTypeValidation).
		WithMessage("invalid priority").
		WithSeverity(SeverityLow).
		WithContext("field", "priority").
		WithSuggestion("Use one of: performance, security, maintainability, balanced").
		WithRecoverable(true).
		Build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "[validation:low]")
	assert.Contains(t, err.Error(), "invalid priority")

	ce, ok := err.(*crewError)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeValidation, ce.Type())
	assert.Equal(t, SeverityLow, ce.Severity())
	assert.Equal(t, "priority", ce.Context()["field"])
	assert.True(t, ce.IsRecoverable())
	assert.Len(t, ce.Suggestions(), 1)
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("open failed")
	err := FileSystemError("/tmp/missing.go", cause)

	assert.Contains(t, err.Error(), "caused by: open failed")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
	}{
		{"validation", ValidationError("bad input"), ErrorTypeValidation},
		{"configuration", ConfigurationError("bad config"), ErrorTypeConfiguration},
		{"filesystem", FileSystemError("x.go", fmt.Errorf("boom")), ErrorTypeFileSystem},
		{"analysis", AnalysisError("security", fmt.Errorf("boom")), ErrorTypeAnalysis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, GetType(tt.err))
			assert.True(t, IsRecoverable(tt.err))
		})
	}
}

func TestGetTypeOnPlainError(t *testing.T) {
	assert.Equal(t, ErrorTypeUnknown, GetType(fmt.Errorf("plain")))
	assert.Nil(t, GetSuggestions(fmt.Errorf("plain")))
	assert.False(t, IsRecoverable(fmt.Errorf("plain")))
}

func TestTypeAndSeverityStrings(t *testing.T) {
	assert.Equal(t, "validation", ErrorTypeValidation.String())
	assert.Equal(t, "analysis", ErrorTypeAnalysis.String())
	assert.Equal(t, "unknown", ErrorTypeUnknown.String())
	assert.Equal(t, "high", SeverityHigh.String())
	assert.Equal(t, "unknown", Severity(99).String())
}
