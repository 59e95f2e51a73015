// Package config provides configuration management and settings for crew.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/crewreview/crew/pkg/collab"
	"github.com/crewreview/crew/pkg/errors"
	"github.com/crewreview/crew/pkg/review"
)

// Config is the full crew configuration.
type Config struct {
	Version string `yaml:"version"`

	Project collab.ProjectContext `yaml:"project"`
	Agents  AgentsConfig          `yaml:"agents"`
	Output  OutputConfig          `yaml:"output"`

	Watch         WatchConfig        `yaml:"watch"`
	Notifications NotificationConfig `yaml:"notifications"`
	Logging       LoggingConfig      `yaml:"logging"`
}

// AgentsConfig selects and bounds the review agents.
type AgentsConfig struct {
	Enabled []string      `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig holds report rendering settings.
type OutputConfig struct {
	Format string `yaml:"format"`
	Color  bool   `yaml:"color"`
	File   string `yaml:"file"`
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Sound         bool `yaml:"sound"`
	CriticalAlert bool `yaml:"critical_alert"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Timestamps bool   `yaml:"timestamps"`
}

// Output format values.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",

		Project: collab.DefaultProjectContext(),

		Agents: AgentsConfig{
			Enabled: []string{
				review.AgentCleanCode,
				review.AgentSecurity,
				review.AgentPerformance,
				review.AgentDesignPatterns,
				review.AgentTestability,
			},
			Timeout: 2 * time.Minute,
		},

		Output: OutputConfig{
			Format: FormatText,
			Color:  true,
		},

		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},

		Notifications: NotificationConfig{
			Sound:         true,
			CriticalAlert: true,
		},

		Logging: LoggingConfig{
			Level:      "info",
			Timestamps: true,
		},
	}
}

// GetConfigPaths returns the configuration file search order.
func GetConfigPaths() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	paths := []string{
		".crew.yaml",
		".crew.yml",
		filepath.Join(homeDir, ".crew.yaml"),
		filepath.Join(homeDir, ".config", "crew", "config.yaml"),
		filepath.Join(homeDir, ".config", "crew", "config.yml"),
	}

	if envPath := os.Getenv("CREW_CONFIG"); envPath != "" {
		paths = append([]string{envPath}, paths...)
	}

	return paths
}

var validPriorities = map[string]bool{
	collab.PriorityBalanced:        true,
	collab.PriorityPerformance:     true,
	collab.PrioritySecurity:        true,
	collab.PriorityMaintainability: true,
}

var validFormats = map[string]bool{
	FormatText:     true,
	FormatMarkdown: true,
	FormatJSON:     true,
}

var knownAgents = map[string]bool{
	review.AgentCleanCode:      true,
	review.AgentSecurity:       true,
	review.AgentPerformance:    true,
	review.AgentDesignPatterns: true,
	review.AgentTestability:    true,
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !validPriorities[c.Project.Priority] {
		return errors.ConfigurationError("project.priority must be one of balanced, performance, security, maintainability")
	}
	if c.Project.TeamSize < 1 {
		return errors.ConfigurationError("project.team_size must be at least 1")
	}
	if c.Project.TestCoverage < 0 || c.Project.TestCoverage > 1 {
		return errors.ConfigurationError("project.test_coverage must be between 0 and 1")
	}

	if len(c.Agents.Enabled) == 0 {
		return errors.ConfigurationError("agents.enabled cannot be empty")
	}
	for _, name := range c.Agents.Enabled {
		if !knownAgents[name] {
			return errors.ConfigurationError("unknown agent: " + name)
		}
	}
	if c.Agents.Timeout < time.Second {
		return errors.ConfigurationError("agents.timeout must be at least 1 second")
	}

	if !validFormats[c.Output.Format] {
		return errors.ConfigurationError("output.format must be one of text, markdown, json")
	}

	if c.Watch.Debounce < 50*time.Millisecond {
		return errors.ConfigurationError("watch.debounce must be at least 50ms")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return errors.ConfigurationError("logging.level must be one of debug, info, warn, error")
	}

	return nil
}

// ApplyEnvironmentOverrides applies CREW_* environment variables over the
// loaded configuration.
func (c *Config) ApplyEnvironmentOverrides() {
	if priority := os.Getenv("CREW_PRIORITY"); priority != "" {
		c.Project.Priority = priority
	}

	if format := os.Getenv("CREW_OUTPUT_FORMAT"); format != "" {
		c.Output.Format = format
	}
	if os.Getenv("NO_COLOR") != "" {
		c.Output.Color = false
	}

	if level := os.Getenv("CREW_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("CREW_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
	if debug := os.Getenv("CREW_DEBUG"); debug != "" {
		if enabled, err := strconv.ParseBool(debug); err == nil && enabled {
			c.Logging.Level = "debug"
		}
	}

	if sound := os.Getenv("CREW_SOUND"); sound != "" {
		if enabled, err := strconv.ParseBool(sound); err == nil {
			c.Notifications.Sound = enabled
		}
	}
}
