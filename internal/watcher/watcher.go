// Package watcher provides file watching with debouncing using fsnotify.
// Changes under the watched paths are coalesced into batches so that a
// burst of writes (editor save, git checkout) triggers one notification.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last event
// before flushing a batch.
const DefaultDebounce = 500 * time.Millisecond

// Event is one observed filesystem change.
type Event struct {
	Path string
	Op   string // "create", "write", "remove", "rename", "chmod"
}

// Watcher watches paths and delivers debounced batches of events.
type Watcher struct {
	Paths    []string
	Pattern  string // filepath.Match glob applied to base names; empty matches all
	Debounce time.Duration
	OnBatch  func([]Event)
}

// New creates a Watcher for the given paths. A nil OnBatch makes Run a no-op
// consumer, which is only useful in tests.
func New(paths []string, pattern string, onBatch func([]Event)) *Watcher {
	return &Watcher{
		Paths:    paths,
		Pattern:  pattern,
		Debounce: DefaultDebounce,
		OnBatch:  onBatch,
	}
}

// Run watches until ctx is cancelled. Directories are watched directly;
// watching a single file watches its parent directory and filters, so that
// atomic replace (write temp, rename over) is still observed.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	fileFilter := make(map[string]bool)
	for _, p := range w.Paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("watch path %s: %w", p, err)
		}
		watchDir := p
		if !info.IsDir() {
			watchDir = filepath.Dir(p)
			fileFilter[filepath.Clean(p)] = true
		}
		if err := fw.Add(watchDir); err != nil {
			return fmt.Errorf("watching %s: %w", watchDir, err)
		}
	}

	return w.loop(ctx, fw.Events, fw.Errors, fileFilter)
}

// loop consumes raw events, applying the pattern and file filters and the
// debounce window. Split out from Run so tests can feed events directly.
func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, fileFilter map[string]bool) error {
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	var pending []Event
	var timer *time.Timer
	var fire <-chan time.Time

	flush := func() {
		if len(pending) > 0 && w.OnBatch != nil {
			w.OnBatch(dedupe(pending))
		}
		pending = nil
		fire = nil
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return ctx.Err()
		case err, ok := <-errs:
			if !ok {
				flush()
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		case ev, ok := <-events:
			if !ok {
				flush()
				return nil
			}
			if !w.accepts(ev.Name, fileFilter) {
				continue
			}
			pending = append(pending, Event{Path: ev.Name, Op: opString(ev.Op)})
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			flush()
		}
	}
}

// accepts reports whether the path passes the single-file filter and the
// base-name glob pattern.
func (w *Watcher) accepts(path string, fileFilter map[string]bool) bool {
	if len(fileFilter) > 0 && !fileFilter[filepath.Clean(path)] {
		return false
	}
	return Matches(w.Pattern, path)
}

// Matches reports whether the path's base name matches the glob pattern.
// An empty pattern matches everything; a malformed pattern matches nothing.
func Matches(pattern, path string) bool {
	if pattern == "" {
		return true
	}
	ok, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && ok
}

// dedupe keeps the last event per path, preserving first-seen order.
func dedupe(events []Event) []Event {
	last := make(map[string]Event, len(events))
	var order []string
	for _, ev := range events {
		if _, seen := last[ev.Path]; !seen {
			order = append(order, ev.Path)
		}
		last[ev.Path] = ev
	}
	out := make([]Event, 0, len(order))
	for _, p := range order {
		out = append(out, last[p])
	}
	return out
}

func opString(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	case op.Has(fsnotify.Chmod):
		return "chmod"
	default:
		return op.String()
	}
}
