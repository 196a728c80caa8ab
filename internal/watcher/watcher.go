// Package watcher provides a debounced filesystem watcher used by watch
// mode to re-lint Python files as they change.
package watcher

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher watches a directory tree for Python file changes and invokes a
// callback with the accumulated set of changed files after a quiet period.
type Watcher struct {
	fsw      *fsnotify.Watcher
	rootDir  string
	debounce time.Duration
	callback func(files []string)

	mu      sync.Mutex
	pending map[string]bool
	timer   *time.Timer
}

// New creates a Watcher for rootDir (watched recursively).
func New(rootDir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		rootDir:  rootDir,
		debounce: defaultDebounce,
		pending:  make(map[string]bool),
	}

	if err := w.addRecursive(rootDir); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Run blocks processing events until ctx is cancelled, invoking callback
// with batches of changed .py files.
func (w *Watcher) Run(ctx context.Context, callback func(files []string)) error {
	w.callback = callback
	fire := make(chan struct{}, 1)

	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			// New directories must be added to the watch set as they appear.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(event.Name); err != nil {
						log.Printf("Warning: failed to watch new directory %s: %v", event.Name, err)
					}
					continue
				}
			}

			if !relevant(event) {
				continue
			}

			w.mu.Lock()
			w.pending[event.Name] = true
			w.resetTimerLocked(fire)
			w.mu.Unlock()

		case <-fire:
			w.flush()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// flush hands the accumulated files to the callback and clears the set.
func (w *Watcher) flush() {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	files := make([]string, 0, len(w.pending))
	for file := range w.pending {
		files = append(files, file)
	}
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	if w.callback != nil {
		w.callback(files)
	}
}

func (w *Watcher) resetTimerLocked(fire chan struct{}) {
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

// relevant reports whether an event concerns a Python file change we care
// about.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
		return false
	}
	return filepath.Ext(event.Name) == ".py"
}

// addRecursive adds every directory under root to the watch set.
func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Printf("Warning: error accessing %s: %v", path, err)
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			log.Printf("Warning: failed to watch directory %s: %v", path, err)
		}
		return nil
	})
}
