// Package watcher provides live reload for the configuration file.
//
// The watcher monitors the config file's directory (editors often replace
// the file rather than write in place) and invokes the handler after changes
// settle, so rapid successive writes collapse into one reload.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Standard errors returned by the watcher.
var (
	// ErrClosed indicates the watcher has been closed.
	ErrClosed = errors.New("config watcher closed")

	// ErrAlreadyWatching indicates Watch was already called.
	ErrAlreadyWatching = errors.New("config watcher already watching")
)

// Handler is called with the config file path after a change settles.
type Handler func(path string)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long changes must settle before the handler fires.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher monitors a single configuration file for changes.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	path     string
	handler  Handler
	debounce time.Duration
	pending  *time.Timer
	watching bool
	closed   bool
	done     chan struct{}
}

// New creates a watcher that invokes handler on config changes.
func New(handler Handler, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		handler:  handler,
		debounce: 250 * time.Millisecond,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.loop()
	return w, nil
}

// Watch starts watching the given config file.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if w.watching {
		return ErrAlreadyWatching
	}

	// Watch the directory so atomic save (write temp, rename over) is seen.
	if err := w.fsw.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	w.path = abs
	w.watching = true
	return nil
}

// Close stops the watcher. Pending notifications are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
	}
	close(w.done)
	w.mu.Unlock()

	return w.fsw.Close()
}

// loop consumes fsnotify events until the watcher is closed.
func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; keep watching.
		}
	}
}

// handleEvent schedules a debounced reload for events on the config file.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.watching || filepath.Clean(event.Name) != w.path {
		return
	}

	if w.pending != nil {
		w.pending.Stop()
	}

	path := w.path
	handler := w.handler
	w.pending = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
			return
		default:
		}
		if handler != nil {
			handler(path)
		}
	})
}
