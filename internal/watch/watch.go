// Package watch reruns a build when its inputs change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses bursts such as an editor's save sequence
const DefaultDebounce = 300 * time.Millisecond

// Options configures Run
type Options struct {
	// Inputs are files or directories. A file is watched through its parent
	// directory, so only events naming that file count. Inside a watched
	// directory every entry counts.
	Inputs   []string
	Debounce time.Duration
	Logger   *zap.Logger
}

type filter struct {
	files map[string]bool
	dirs  map[string]bool
}

func (f filter) match(name string) bool {
	name = filepath.Clean(name)
	return f.files[name] || f.dirs[filepath.Dir(name)]
}

// Run blocks until ctx is done, calling rebuild once per quiet period after
// a relevant change. Rebuild errors are logged and watching continues.
// Inputs missing at start are skipped.
func Run(ctx context.Context, opts Options, rebuild func() error) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	f := filter{files: map[string]bool{}, dirs: map[string]bool{}}
	watched := map[string]bool{}
	for _, input := range opts.Inputs {
		input = filepath.Clean(input)
		info, err := os.Stat(input)
		if err != nil {
			logger.Warn("not watching missing input", zap.String("path", input))
			continue
		}
		dir := input
		if info.IsDir() {
			f.dirs[input] = true
		} else {
			f.files[input] = true
			dir = filepath.Dir(input)
		}
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watched[dir] = true
		logger.Debug("watching", zap.String("dir", dir))
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod || !f.match(ev.Name) {
				continue
			}
			logger.Debug("change", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		case <-timer.C:
			start := time.Now()
			if err := rebuild(); err != nil {
				logger.Error("rebuild failed", zap.Error(err))
				continue
			}
			logger.Info("rebuilt", zap.Duration("elapsed", time.Since(start)))
		}
	}
}
