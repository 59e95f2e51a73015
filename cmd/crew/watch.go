package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/crewreview/crew/pkg/config"
	"github.com/crewreview/crew/pkg/logger"
	"github.com/crewreview/crew/pkg/notify"
	"github.com/crewreview/crew/pkg/output"
	"github.com/crewreview/crew/pkg/review"
	"github.com/crewreview/crew/pkg/watch"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [files...]",
	Short: "Re-review files whenever they change",
	Long: `Watch one or more source files and re-run the full review every time one
of them is saved. Rapid successive saves are debounced into a single run.

A sound notification plays after each run when enabled in the config:
a short beep for a clean pass, a double low beep when critical issues
are found.

Press Ctrl+C to stop watching.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyReviewFlags(cmd, cfg); err != nil {
			return err
		}
		return runWatchCommand(cmd.Context(), cfg, args)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("format", "f", "", "output format (text, markdown, json)")
	watchCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	watchCmd.Flags().StringP("priority", "p", "", "project priority (balanced, performance, security, maintainability)")
	watchCmd.Flags().StringSlice("agents", nil, "agents to run (default: all enabled in config)")
}

func runWatchCommand(ctx context.Context, cfg *config.Config, paths []string) error {
	if len(paths) > 1 && cfg.Output.File != "" {
		// A single report file would be clobbered by each change.
		cfg.Output.File = ""
	}

	log := logger.GetLogger().WithPrefix("watch")
	soundConfig := notify.DefaultSoundConfig()
	soundConfig.Enabled = cfg.Notifications.Sound
	notifier := notify.NewSoundNotifier(soundConfig)

	cache := output.NewReportCache(0)
	reviewOnce := func(path string) {
		snippet, err := review.LoadSnippet(path)
		if err != nil {
			log.Error("review of %s failed: %v", path, err)
			return
		}
		// Editors fire write events for saves that change nothing.
		if _, ok := cache.Get(snippet); ok {
			log.Debug("content of %s unchanged, skipping review", path)
			return
		}

		report, err := reviewSnippet(ctx, cfg, snippet)
		if err != nil {
			log.Error("review of %s failed: %v", path, err)
			return
		}
		cache.Put(snippet, report)
		if err := output.WriteReport(report, cfg.Output.Format, cfg.Output.File, cfg.Output.Color); err != nil {
			log.Error("writing report for %s failed: %v", path, err)
			return
		}
		notifyResult(notifier, cfg, report)
	}

	// Initial pass so the first report does not wait for a save.
	for _, path := range paths {
		reviewOnce(path)
	}

	watcher, err := watch.New(paths, cfg.Watch.Debounce, reviewOnce, log)
	if err != nil {
		return err
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %d file(s) for changes. Press Ctrl+C to stop.\n", len(paths))
	if err := watcher.Run(signalCtx); err != nil && signalCtx.Err() == nil {
		return err
	}
	return nil
}

// notifyResult plays the completion sound appropriate for the review outcome.
func notifyResult(notifier *notify.SoundNotifier, cfg *config.Config, report output.Report) {
	if !cfg.Notifications.Sound {
		return
	}
	critical := report.SeverityCounts()[review.SeverityCritical]
	if critical > 0 && cfg.Notifications.CriticalAlert {
		notifier.PlayCriticalFindingSound()
		return
	}
	notifier.PlayReviewCompleteSound()
}
