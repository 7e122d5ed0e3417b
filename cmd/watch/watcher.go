package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/LegacyCodeHQ/solflat/cmd/source"
	"github.com/LegacyCodeHQ/solflat/workspace"
	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 300 * time.Millisecond

// watchAndRebuild calls rebuild whenever one of files changes, until ctx is done.
// Parent directories are watched rather than the files themselves so that
// files replaced by rename keep being tracked.
func watchAndRebuild(ctx context.Context, files []string, rebuild func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched, err := addWatchDirs(watcher.Add, files)
	if err != nil {
		return fmt.Errorf("failed to watch compilation files: %w", err)
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevantChange(event, watched) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, rebuild)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)
		}
	}
}

// addWatchDirs adds the directory of every file and returns the absolute file paths.
func addWatchDirs(add func(string) error, files []string) (map[string]bool, error) {
	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool)

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", file, err)
		}
		watched[absPath] = true

		dir := filepath.Dir(absPath)
		if dirs[dir] {
			continue
		}
		if err := add(dir); err != nil {
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	return watched, nil
}

func isRelevantChange(event fsnotify.Event, watched map[string]bool) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	absPath, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return watched[absPath]
}

// rebuilder loads, flattens and publishes compilation results one at a time, so
// snapshots reach the broker in revision order even when debounced rebuilds overlap.
type rebuilder struct {
	mu      sync.Mutex
	src     source.Options
	session *workspace.Session
	broker  *broker
}

func newRebuilder(src source.Options, session *workspace.Session, b *broker) *rebuilder {
	return &rebuilder{src: src, session: session, broker: b}
}

// deliverCurrentResult loads the compilation result, hands it to the session and
// broadcasts the flattened outcome. Load failures keep the previous result in place.
func (r *rebuilder) deliverCurrentResult() {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, err := r.src.Load()
	if err != nil {
		slog.Error("failed to load compilation result", "error", err)
		return
	}
	r.session.Deliver(result)

	current, err := r.session.Snapshot()
	snapshot := flattenSnapshot{
		Revision:  current.Revision,
		Timestamp: time.Now().UTC(),
		Label:     current.Label,
	}
	if err != nil {
		slog.Error("flatten failed", "target", current.Target, "revision", current.Revision, "error", err)
		snapshot.Error = err.Error()
	} else {
		slog.Info("flattened", "target", current.Target, "revision", current.Revision, "bytes", len(current.Text))
		snapshot.Flattened = current.Text
	}

	msg, err := snapshot.encode()
	if err != nil {
		slog.Error("failed to encode snapshot", "error", err)
		return
	}
	r.broker.publish(msg)
}
