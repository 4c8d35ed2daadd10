package watch

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/llmstxt/internal/logfields"
	"git.home.luguber.info/inful/llmstxt/internal/observability"
)

// Watcher monitors a documentation source tree and triggers regeneration on
// changes. Rapid bursts of filesystem events are debounced into a single
// trigger.
type Watcher struct {
	root         string
	watcher      *fsnotify.Watcher
	changeChan   chan struct{}
	debounceTime time.Duration
}

// New creates a watcher rooted at root. Watches are registered per
// directory (more reliable than watching individual files); directories
// created later are added as they appear.
func New(root string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to resolve watch root: %w", err)
	}

	w := &Watcher{
		root:         absRoot,
		watcher:      fsWatcher,
		changeChan:   make(chan struct{}, 1),
		debounceTime: 500 * time.Millisecond,
	}

	if err := w.addTree(absRoot); err != nil {
		fsWatcher.Close()
		return nil, err
	}
	return w, nil
}

// Run watches until ctx is cancelled, invoking onChange after each debounced
// burst of events.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.watcher.Close()

	observability.InfoContext(ctx, "Watching documentation source", logfields.Path(w.root))
	go w.watchLoop(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.changeChan:
			w.drainDebounce(ctx)
			onChange()
		}
	}
}

// watchLoop collapses raw filesystem events into change notifications.
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) {
				// New directories must be watched too.
				if err := w.addTree(event.Name); err != nil {
					observability.DebugContext(ctx, "Could not extend watch",
						logfields.Path(event.Name), logfields.Error(err))
				}
			}
			select {
			case w.changeChan <- struct{}{}:
			default: // a trigger is already pending
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			observability.WarnContext(ctx, "File watcher error", logfields.Error(err))
		}
	}
}

// drainDebounce waits out the debounce window, absorbing further triggers.
func (w *Watcher) drainDebounce(ctx context.Context) {
	timer := time.NewTimer(w.debounceTime)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.changeChan:
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounceTime)
		case <-timer.C:
			return
		}
	}
}

// addTree registers path and every directory below it.
func (w *Watcher) addTree(path string) error {
	return filepath.WalkDir(path, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // a racing delete is not fatal
		}
		if !entry.IsDir() {
			return nil
		}
		if name := entry.Name(); p != path && len(name) > 0 && name[0] == '.' {
			return filepath.SkipDir
		}
		return w.watcher.Add(p)
	})
}
