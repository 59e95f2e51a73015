// Package logger provides leveled, prefixed logging for crew.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level. Unknown names map to LevelInfo.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a leveled logger writing to one or more destinations
type Logger struct {
	level     Level
	writers   []io.Writer
	prefix    string
	timestamp bool
}

// Config holds logger configuration
type Config struct {
	Level     Level
	LogFile   string
	Timestamp bool
	Prefix    string
}

// New creates a new logger with the given configuration
func New(config Config) (*Logger, error) {
	writers := []io.Writer{}

	// Keep test output clean
	if !testing.Testing() {
		writers = append(writers, os.Stderr)
	}

	l := &Logger{
		level:     config.Level,
		prefix:    config.Prefix,
		timestamp: config.Timestamp,
		writers:   writers,
	}

	if config.LogFile != "" {
		logDir := filepath.Dir(config.LogFile)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}

		file, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", config.LogFile, err)
		}

		l.writers = append(l.writers, file)
	}

	return l, nil
}

// NewDefault creates a logger with default settings
func NewDefault() *Logger {
	l, _ := New(Config{ //nolint:errcheck // cannot fail without a log file
		Level:     LevelInfo,
		Timestamp: true,
		Prefix:    "crew",
	})
	return l
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// WithPrefix returns a copy of the logger with an additional prefix segment
func (l *Logger) WithPrefix(prefix string) *Logger {
	clone := *l
	if l.prefix != "" {
		clone.prefix = l.prefix + ":" + prefix
	} else {
		clone.prefix = prefix
	}
	return &clone
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	var parts []string

	if l.timestamp {
		parts = append(parts, time.Now().Format("2006-01-02 15:04:05"))
	}

	parts = append(parts, fmt.Sprintf("[%s]", level.String()))

	if l.prefix != "" {
		parts = append(parts, fmt.Sprintf("[%s]", l.prefix))
	}

	parts = append(parts, fmt.Sprintf(format, args...))

	line := strings.Join(parts, " ") + "\n"
	for _, w := range l.writers {
		_, _ = w.Write([]byte(line)) //nolint:errcheck // log output errors are not actionable
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Global logger instance used by packages that are not handed a logger.
var globalLogger = NewDefault()

// GetLogger returns the global logger instance
func GetLogger() *Logger {
	return globalLogger
}

// SetGlobalLogger replaces the global logger instance
func SetGlobalLogger(l *Logger) {
	globalLogger = l
}
