package main

import (
	"fmt"
	"os"

	"github.com/crewreview/crew/pkg/config"
	"github.com/crewreview/crew/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	debug   bool

	// cfg is populated by initConfig before any subcommand runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "crew",
	Short: "Multi-agent code review with conflict resolution",
	Long: `crew runs a team of specialist review agents over your source files and
reconciles their advice into a single, coherent report.

Each agent reviews from one perspective:
- clean-code: naming, function size, readability
- security: secrets, injection, unsafe input handling
- performance: algorithmic cost, queries in loops, allocations
- design-patterns: structure, coupling, pattern opportunities
- testability: hidden dependencies, global state, hard-to-mock code

When agents disagree about the same line, crew classifies the conflict,
picks a resolution strategy from your project context, and reports the
winning recommendation with its rationale alongside any synergies found.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .crew.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug output")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "log file path")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	loaded, err := config.NewLoader(cfgFile).LoadConfig()
	if err != nil {
		if debug {
			fmt.Printf("Warning: Failed to load config: %v\n", err)
		}
		loaded = config.DefaultConfig()
		loaded.ApplyEnvironmentOverrides()
	}

	// Apply command line flag overrides
	if debug {
		loaded.Logging.Level = "debug"
	}
	logLevel, err := rootCmd.PersistentFlags().GetString("log-level")
	if err != nil {
		logLevel = ""
	}
	if logLevel != "" {
		loaded.Logging.Level = logLevel
	}
	logFile, err := rootCmd.PersistentFlags().GetString("log-file")
	if err != nil {
		logFile = ""
	}
	if logFile != "" {
		loaded.Logging.File = logFile
	}
	noColor, err := rootCmd.PersistentFlags().GetBool("no-color")
	if err != nil {
		noColor = false
	}
	if noColor {
		loaded.Output.Color = false
	}

	cfg = loaded

	// Initialize logger with configuration
	globalLogger, err := logger.New(logger.Config{
		Level:     logger.ParseLevel(cfg.Logging.Level),
		LogFile:   cfg.Logging.File,
		Timestamp: cfg.Logging.Timestamps,
		Prefix:    "crew",
	})
	if err != nil {
		if debug {
			fmt.Printf("Warning: Failed to initialize logger: %v\n", err)
		}
		globalLogger = logger.NewDefault()
	}
	logger.SetGlobalLogger(globalLogger)
}
