// Package watch re-runs reviews when watched source files change.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/crewreview/crew/pkg/logger"
)

// Callback is invoked with the changed file path after debouncing.
type Callback func(path string)

// Watcher watches source files and triggers a callback on change. Rapid
// successive writes to the same file collapse into one invocation.
type Watcher struct {
	paths    map[string]struct{}
	debounce time.Duration
	callback Callback
	watcher  *fsnotify.Watcher
	logger   *logger.Logger
}

// New creates a watcher over the given files.
func New(paths []string, debounce time.Duration, callback Callback, log *logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.GetLogger()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watched := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		watched[abs] = struct{}{}

		if _, err := os.Stat(abs); err != nil {
			_ = fw.Close() //nolint:errcheck // already failing
			return nil, err
		}
		if err := fw.Add(abs); err != nil {
			_ = fw.Close() //nolint:errcheck // already failing
			return nil, err
		}
		// Watch the directory too: editors often replace files on save,
		// which drops the watch on the old inode.
		if err := fw.Add(filepath.Dir(abs)); err != nil {
			log.Debug("failed to watch directory %s: %v", filepath.Dir(abs), err)
		}
	}

	return &Watcher{
		paths:    watched,
		debounce: debounce,
		callback: callback,
		watcher:  fw,
		logger:   log.WithPrefix("watch"),
	}, nil
}

// Run processes file events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close() //nolint:errcheck // shutdown path

	timers := make(map[string]*time.Timer)
	defer func() {
		for _, timer := range timers {
			timer.Stop()
		}
	}()

	w.logger.Info("watching %d files (debounce: %s)", len(w.paths), w.debounce)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			name, err := filepath.Abs(event.Name)
			if err != nil {
				name = event.Name
			}
			if _, watched := w.paths[name]; !watched {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if timer, ok := timers[name]; ok {
				timer.Stop()
			}
			timers[name] = time.AfterFunc(w.debounce, func() {
				w.logger.Info("file changed: %s", name)
				w.callback(name)
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error: %v", err)
		}
	}
}
