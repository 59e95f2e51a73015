package main

import (
	"context"
	"time"

	"github.com/crewreview/crew/pkg/agents"
	"github.com/crewreview/crew/pkg/collab"
	"github.com/crewreview/crew/pkg/config"
	"github.com/crewreview/crew/pkg/errors"
	"github.com/crewreview/crew/pkg/logger"
	"github.com/crewreview/crew/pkg/output"
	"github.com/crewreview/crew/pkg/review"
	"github.com/spf13/cobra"
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review [files...]",
	Short: "Review source files with the agent team",
	Long: `Review one or more source files with all enabled agents and print a
combined report including cross-agent conflicts, their resolutions, and
synergy opportunities.

Examples:
  crew review main.go
  crew review --format markdown --output review.md src/handler.py
  crew review --priority security --agents security,performance api.go`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyReviewFlags(cmd, cfg); err != nil {
			return err
		}
		return runReviewCommand(cmd.Context(), cfg, args)
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().StringP("format", "f", "", "output format (text, markdown, json)")
	reviewCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	reviewCmd.Flags().StringP("priority", "p", "", "project priority (balanced, performance, security, maintainability)")
	reviewCmd.Flags().StringSlice("agents", nil, "agents to run (default: all enabled in config)")
}

// applyReviewFlags layers review command flags over the loaded configuration
// and re-validates the result.
func applyReviewFlags(cmd *cobra.Command, cfg *config.Config) error {
	if format, err := cmd.Flags().GetString("format"); err == nil && format != "" {
		cfg.Output.Format = format
	}
	if outFile, err := cmd.Flags().GetString("output"); err == nil && outFile != "" {
		cfg.Output.File = outFile
	}
	if priority, err := cmd.Flags().GetString("priority"); err == nil && priority != "" {
		cfg.Project.Priority = priority
	}
	if names, err := cmd.Flags().GetStringSlice("agents"); err == nil && len(names) > 0 {
		cfg.Agents.Enabled = names
	}
	return cfg.Validate()
}

func runReviewCommand(ctx context.Context, cfg *config.Config, paths []string) error {
	if len(paths) > 1 && cfg.Output.File != "" {
		return errors.ValidationError("--output supports a single input file")
	}

	for _, path := range paths {
		report, err := runReview(ctx, cfg, path)
		if err != nil {
			return err
		}
		if err := output.WriteReport(report, cfg.Output.Format, cfg.Output.File, cfg.Output.Color); err != nil {
			return err
		}
	}
	return nil
}

// runReview loads one file, fans it out to the enabled agents, and runs the
// collaboration analysis over their combined results.
func runReview(ctx context.Context, cfg *config.Config, path string) (output.Report, error) {
	snippet, err := review.LoadSnippet(path)
	if err != nil {
		return output.Report{}, err
	}
	return reviewSnippet(ctx, cfg, snippet)
}

func reviewSnippet(ctx context.Context, cfg *config.Config, snippet review.Snippet) (output.Report, error) {
	runner := agents.NewRunner(selectAgents(cfg.Agents.Enabled), logger.GetLogger())

	runCtx, cancel := context.WithTimeout(ctx, cfg.Agents.Timeout)
	defer cancel()
	results, err := runner.Run(runCtx, snippet)
	if err != nil {
		return output.Report{}, err
	}

	engine := collab.NewEngine(collab.EngineConfig{
		Context: cfg.Project,
		Logger:  logger.GetLogger(),
	})
	collaboration := engine.AnalyzeCollaboration(results)
	collaboration.Conflicts = engine.ResolveConflicts(collaboration.Conflicts)

	return output.Report{
		Path:          snippet.Path,
		Language:      snippet.Language,
		GeneratedAt:   time.Now().UTC(),
		Results:       results,
		Collaboration: collaboration,
	}, nil
}

// selectAgents maps enabled agent names onto the built-in agents, preserving
// the canonical agent order rather than the config order.
func selectAgents(enabled []string) []agents.Agent {
	wanted := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		wanted[name] = true
	}

	var selected []agents.Agent
	for _, agent := range agents.DefaultAgents() {
		if wanted[agent.Name()] {
			selected = append(selected, agent)
		}
	}
	return selected
}
