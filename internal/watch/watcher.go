// Package watch monitors source files for changes so the CLI can re-parse
// doc comments on save, debouncing the rapid-fire write events editors
// tend to emit for a single logical save.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period required after the last matching
// event before a change notification is sent.
const defaultDebounce = 150 * time.Millisecond

// Watcher monitors one or more files, identified by extension, under a set
// of directories for changes using fsnotify with debouncing.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dirs     []string
	ext      string
	events   chan string
	errors   chan error
	done     chan struct{}
	debounce time.Duration
	mu       sync.Mutex
	closed   bool

	pending map[string]struct{}
	timer   *time.Timer
}

// New creates a Watcher that reports changes to files ending in ext found
// under any of roots (recursively). Each root must exist at creation time.
func New(roots []string, ext string) (*Watcher, error) {
	return NewWithDebounce(roots, ext, defaultDebounce)
}

// NewWithDebounce is New with a caller-supplied debounce window.
func NewWithDebounce(roots []string, ext string, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(roots))
	for _, root := range roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			_ = fsWatcher.Close()

			return nil, err
		}

		if walkErr := addTree(fsWatcher, absRoot); walkErr != nil {
			_ = fsWatcher.Close()

			return nil, walkErr
		}

		dirs = append(dirs, absRoot)
	}

	w := &Watcher{
		watcher:  fsWatcher,
		dirs:     dirs,
		ext:      ext,
		events:   make(chan string, 16),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
		debounce: debounce,
		pending:  make(map[string]struct{}),
	}

	go w.loop()

	return w, nil
}

// addTree registers dir and every subdirectory it contains with the
// fsnotify watcher; fsnotify only watches directories non-recursively.
func addTree(fsWatcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fsWatcher.Add(path)
		}

		return nil
	})
}

// Events returns a channel that receives the path of each changed file
// matching the watched extension, coalesced by the debounce window.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Errors returns a channel that receives errors from the underlying
// fsnotify watcher.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and releases resources. Safe to call more than
// once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()

		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)

	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var timerChan <-chan time.Time

	for {
		select {
		case <-w.done:
			if w.timer != nil {
				w.timer.Stop()
			}

			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			timerChan = w.handleEvent(event)

		case <-timerChan:
			w.flush()
			timerChan = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) <-chan time.Time {
	if filepath.Ext(event.Name) != w.ext {
		return nil
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return nil
	}

	absPath, err := filepath.Abs(event.Name)
	if err != nil {
		return nil
	}
	w.pending[absPath] = struct{}{}

	if w.timer == nil {
		w.timer = time.NewTimer(w.debounce)

		return w.timer.C
	}

	if !w.timer.Stop() {
		select {
		case <-w.timer.C:
		default:
		}
	}
	w.timer.Reset(w.debounce)

	return w.timer.C
}

func (w *Watcher) flush() {
	w.timer = nil
	for path := range w.pending {
		delete(w.pending, path)
		select {
		case w.events <- path:
		default:
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
