// Package errors provides structured error handling for crew with
// categorization, severity levels, and contextual information.
package errors

import (
	"fmt"
	"strings"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrorTypeUnknown represents an unknown error type
	ErrorTypeUnknown ErrorType = iota

	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation

	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration

	// ErrorTypeFileSystem represents file system errors
	ErrorTypeFileSystem

	// ErrorTypeAnalysis represents agent analysis errors
	ErrorTypeAnalysis

	// ErrorTypeSystem represents system-level errors
	ErrorTypeSystem
)

// String returns a string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeConfiguration:
		return "configuration"
	case ErrorTypeFileSystem:
		return "filesystem"
	case ErrorTypeAnalysis:
		return "analysis"
	case ErrorTypeSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow represents low severity errors (warnings)
	SeverityLow Severity = iota

	// SeverityMedium represents medium severity errors (recoverable)
	SeverityMedium

	// SeverityHigh represents high severity errors (critical)
	SeverityHigh
)

// String returns a string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// crewError represents a structured error with additional context
type crewError struct {
	errorType   ErrorType
	severity    Severity
	message     string
	cause       error
	context     map[string]interface{}
	recoverable bool
	suggestions []string
}

// Error implements the error interface
func (e *crewError) Error() string {
	parts := []string{
		fmt.Sprintf("[%s:%s]", e.errorType.String(), e.severity.String()),
		e.message,
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("caused by: %s", e.cause.Error()))
	}

	return strings.Join(parts, " ")
}

// Type returns the error type
func (e *crewError) Type() ErrorType {
	return e.errorType
}

// Severity returns the error severity
func (e *crewError) Severity() Severity {
	return e.severity
}

// Context returns the error context
func (e *crewError) Context() map[string]interface{} {
	return e.context
}

// IsRecoverable returns whether the error is recoverable
func (e *crewError) IsRecoverable() bool {
	return e.recoverable
}

// Suggestions returns suggested actions to resolve the error
func (e *crewError) Suggestions() []string {
	return e.suggestions
}

// Unwrap returns the underlying error for compatibility with errors.Unwrap
func (e *crewError) Unwrap() error {
	return e.cause
}

// ErrorBuilder helps construct structured errors
type ErrorBuilder struct {
	errorType   ErrorType
	severity    Severity
	message     string
	cause       error
	context     map[string]interface{}
	recoverable bool
	suggestions []string
}

// NewError creates a new error builder
func NewError(errorType ErrorType) *ErrorBuilder {
	return &ErrorBuilder{
		errorType: errorType,
		severity:  SeverityMedium,
		context:   make(map[string]interface{}),
	}
}

// WithMessage sets the error message
func (eb *ErrorBuilder) WithMessage(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// WithMessagef sets the error message with formatting
func (eb *ErrorBuilder) WithMessagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// WithCause sets the underlying cause of the error
func (eb *ErrorBuilder) WithCause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// WithSeverity sets the error severity
func (eb *ErrorBuilder) WithSeverity(severity Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// WithContext adds context information
func (eb *ErrorBuilder) WithContext(key string, value interface{}) *ErrorBuilder {
	eb.context[key] = value
	return eb
}

// WithRecoverable marks the error as recoverable
func (eb *ErrorBuilder) WithRecoverable(recoverable bool) *ErrorBuilder {
	eb.recoverable = recoverable
	return eb
}

// WithSuggestion adds a suggested action
func (eb *ErrorBuilder) WithSuggestion(suggestion string) *ErrorBuilder {
	eb.suggestions = append(eb.suggestions, suggestion)
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() error {
	return &crewError{
		errorType:   eb.errorType,
		severity:    eb.severity,
		message:     eb.message,
		cause:       eb.cause,
		context:     eb.context,
		recoverable: eb.recoverable,
		suggestions: eb.suggestions,
	}
}

// Convenience functions for common error types

// ValidationError creates a validation error
func ValidationError(message string) error {
	return NewError(ErrorTypeValidation).
		WithMessage(message).
		WithSeverity(SeverityLow).
		WithRecoverable(true).
		Build()
}

// ConfigurationError creates a configuration error
func ConfigurationError(message string) error {
	return NewError(ErrorTypeConfiguration).
		WithMessage(message).
		WithSeverity(SeverityHigh).
		WithRecoverable(true).
		WithSuggestion("Check your configuration file").
		WithSuggestion("Run 'crew config validate' to verify settings").
		Build()
}

// FileSystemError creates a file system error
func FileSystemError(path string, cause error) error {
	return NewError(ErrorTypeFileSystem).
		WithMessagef("file operation failed for %s", path).
		WithCause(cause).
		WithSeverity(SeverityMedium).
		WithRecoverable(true).
		WithContext("path", path).
		WithSuggestion("Verify the file exists and is readable").
		Build()
}

// AnalysisError creates an agent analysis error
func AnalysisError(agent string, cause error) error {
	return NewError(ErrorTypeAnalysis).
		WithMessagef("agent %q failed during analysis", agent).
		WithCause(cause).
		WithSeverity(SeverityMedium).
		WithRecoverable(true).
		WithContext("agent", agent).
		Build()
}

// GetType extracts the error type from an error, if it is a crew error
func GetType(err error) ErrorType {
	if ce, ok := err.(*crewError); ok {
		return ce.Type()
	}
	return ErrorTypeUnknown
}

// GetSuggestions extracts suggestions from an error, if it is a crew error
func GetSuggestions(err error) []string {
	if ce, ok := err.(*crewError); ok {
		return ce.Suggestions()
	}
	return nil
}

// IsRecoverable reports whether the error is marked recoverable
func IsRecoverable(err error) bool {
	if ce, ok := err.(*crewError); ok {
		return ce.IsRecoverable()
	}
	return false
}
