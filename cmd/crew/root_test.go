package main

import (
	"testing"

	"github.com/crewreview/crew/pkg/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	oldCfgFile := cfgFile
	oldDebug := debug
	oldVerbose := verbose
	defer func() {
		cfgFile = oldCfgFile
		debug = oldDebug
		verbose = oldVerbose
	}()

	// Default values should produce a usable config without panicking.
	cfgFile = ""
	debug = false
	verbose = false
	initConfig()
	require.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())

	// Debug flag drops the log level.
	debug = true
	initConfig()
	assert.Equal(t, "debug", cfg.Logging.Level)

	// A missing config file falls back to defaults.
	cfgFile = "/non/existent/config.yaml"
	initConfig()
	require.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestSelectAgents(t *testing.T) {
	selected := selectAgents([]string{review.AgentSecurity, review.AgentCleanCode})

	require.Len(t, selected, 2)
	// Canonical order, not config order.
	assert.Equal(t, review.AgentCleanCode, selected[0].Name())
	assert.Equal(t, review.AgentSecurity, selected[1].Name())
}

func TestSelectAgentsUnknownNamesIgnored(t *testing.T) {
	selected := selectAgents([]string{"nonexistent", review.AgentTestability})

	require.Len(t, selected, 1)
	assert.Equal(t, review.AgentTestability, selected[0].Name())
}

func TestRootCommandStructure(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["review"])
	assert.True(t, names["watch"])
	assert.True(t, names["agents"])
	assert.True(t, names["version"])
}
