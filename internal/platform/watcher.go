package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchSettle coalesces bursts of filesystem events (editors write several
// times per save) into one rescan.
const watchSettle = 200 * time.Millisecond

// WatchFile invokes onChange whenever the snapshot file is written. It
// returns once the watch is established; events are handled on a
// background goroutine until ctx is cancelled. The parent directory is
// watched rather than the file itself so atomic rename-style saves are
// seen too.
func WatchFile(ctx context.Context, path string, logger *zap.Logger, onChange func()) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	go func() {
		defer watcher.Close()
		var settle *time.Timer
		var settleC <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				logger.Debug("snapshot changed", zap.String("path", path), zap.String("op", ev.Op.String()))
				if settle == nil {
					settle = time.NewTimer(watchSettle)
				} else {
					settle.Reset(watchSettle)
				}
				settleC = settle.C
			case <-settleC:
				settleC = nil
				onChange()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error", zap.Error(err))
			}
		}
	}()
	return nil
}
