// Package watch signals changes to input files using fsnotify.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
	"github.com/custodia-labs/tagsmith/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// DefaultDebounce is how long the watcher waits for a burst of events to settle.
const DefaultDebounce = 200 * time.Millisecond

// relevantOps are the operations that change a file's content. Editors that
// save by writing a temporary file and renaming it show up as Create.
const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// Watcher watches single files. It watches the parent directory so that
// files replaced by rename are still seen.
type Watcher struct {
	debounce time.Duration
}

// New creates a watcher with the given debounce; zero uses DefaultDebounce.
func New(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{debounce: debounce}
}

// Watch starts watching path until ctx is done.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)
	go w.loop(ctx, fw, abs, changes)
	return changes, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, path string, changes chan<- struct{}) {
	defer close(changes)
	defer fw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !Relevant(event, path) {
				continue
			}
			logger.Debug("Watch event: %s", event)
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watch error: %v", err)

		case <-timer.C:
			select {
			case changes <- struct{}{}:
			default:
				// A signal is already pending.
			}
		}
	}
}

// Relevant reports whether event changes the file at path.
func Relevant(event fsnotify.Event, path string) bool {
	if event.Op&relevantOps == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == path
}
