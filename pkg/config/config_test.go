package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewreview/crew/pkg/collab"
	"github.com/crewreview/crew/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()

	require.NoError(t, config.Validate())
	assert.Equal(t, "1.0", config.Version)
	assert.Equal(t, collab.PriorityBalanced, config.Project.Priority)
	assert.Len(t, config.Agents.Enabled, 5)
	assert.Equal(t, FormatText, config.Output.Format)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown priority", func(c *Config) { c.Project.Priority = "fastest" }},
		{"zero team size", func(c *Config) { c.Project.TeamSize = 0 }},
		{"coverage above one", func(c *Config) { c.Project.TestCoverage = 1.5 }},
		{"no agents", func(c *Config) { c.Agents.Enabled = nil }},
		{"unknown agent", func(c *Config) { c.Agents.Enabled = []string{"style-police"} }},
		{"tiny timeout", func(c *Config) { c.Agents.Timeout = time.Millisecond }},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }},
		{"tiny debounce", func(c *Config) { c.Watch.Debounce = time.Millisecond }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()

			require.Error(t, err)
			assert.Equal(t, errors.ErrorTypeConfiguration, errors.GetType(err))
		})
	}
}

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Setenv("CREW_PRIORITY", collab.PrioritySecurity)
	t.Setenv("CREW_OUTPUT_FORMAT", FormatJSON)
	t.Setenv("CREW_LOG_LEVEL", "warn")
	t.Setenv("CREW_LOG_FILE", "/tmp/crew.log")
	t.Setenv("CREW_SOUND", "false")

	config := DefaultConfig()
	config.ApplyEnvironmentOverrides()

	assert.Equal(t, collab.PrioritySecurity, config.Project.Priority)
	assert.Equal(t, FormatJSON, config.Output.Format)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "/tmp/crew.log", config.Logging.File)
	assert.False(t, config.Notifications.Sound)
}

func TestDebugOverrideForcesDebugLevel(t *testing.T) {
	t.Setenv("CREW_DEBUG", "true")

	config := DefaultConfig()
	config.ApplyEnvironmentOverrides()

	assert.Equal(t, "debug", config.Logging.Level)
}

func TestNoColorDisablesColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	config := DefaultConfig()
	config.ApplyEnvironmentOverrides()

	assert.False(t, config.Output.Color)
}
