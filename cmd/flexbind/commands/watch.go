package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay collapses the burst of events an editor save produces.
const debounceDelay = 150 * time.Millisecond

// watch re-renders the scene each time its file changes, until ctx ends.
// The directory is watched rather than the file so editors that save by
// rename keep working.
func (r *sceneRenderer) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(r.path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", r.path, err)
	}

	fmt.Fprintf(r.out, "👀 Watching %s (Ctrl+C to stop)\n", r.path)

	debounce := time.NewTimer(debounceDelay)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSceneChange(event, target) {
				continue
			}
			debounce.Reset(debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("watch error", "error", err)

		case <-debounce.C:
			fmt.Fprintln(r.out, "🔄 Scene changed, re-rendering...")
			if err := r.render(); err != nil {
				r.logger.Error("render failed", "path", r.path, "error", err)
			}
		}
	}
}

// isSceneChange reports whether event touches the scene file.
func isSceneChange(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
