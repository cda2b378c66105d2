// Package watch monitors the project manifest for changes and triggers
// rebuild callbacks when modifications are detected.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the event bursts editors produce when they
// save a file through a temp-file rename.
const DefaultDebounce = 250 * time.Millisecond

// Event is one observed change of the watched file.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string
	// Time is when the (last) underlying change was seen.
	Time time.Time
}

// Handler is called after the debounce window closes.
type Handler func(Event)

// Watcher monitors one file for changes. The parent directory is
// watched rather than the file itself, because most editors replace the
// file on save and the old inode stops emitting events.
type Watcher struct {
	path     string
	debounce time.Duration
	handler  Handler
}

// New creates a watcher for path. A zero debounce uses DefaultDebounce.
func New(path string, debounce time.Duration, handler Handler) (*Watcher, error) {
	if handler == nil {
		return nil, fmt.Errorf("watch: handler must not be nil")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: abs, debounce: debounce, handler: handler}, nil
}

// Run watches until the context is cancelled. Cancellation is a normal
// shutdown and returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = fw.Close()
	}()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %q: %w", filepath.Dir(w.path), err)
	}

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
		last    time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			last = time.Now()
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
		case <-timerCh:
			timer = nil
			timerCh = nil
			w.handler(Event{Path: w.path, Time: last})
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// relevant filters directory noise down to operations on the watched
// file that change its content.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}
