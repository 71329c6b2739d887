// Package watcher observes the settings file for external modification.
//
// The watcher monitors a single file and invokes registered handlers on
// every external change. The parent directory is watched rather than the
// file itself: editors and atomic writers replace the file wholesale,
// which silently drops a per-file kernel watch after one event.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by operations on a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// Handler is called when the watched file changes.
type Handler func()

// Watcher monitors one file for changes.
type Watcher struct {
	mu sync.Mutex

	fsw  *fsnotify.Watcher
	path string // absolute path of the watched file
	dir  string

	handlers []Handler
	closed   bool

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a watcher for the file at path. The file itself need not
// exist yet; its directory must.
func New(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(absPath)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:  fsw,
		path: absPath,
		dir:  dir,
		done: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// OnChange registers a handler invoked on every change to the file.
// Handlers run on the watch goroutine; they must not block indefinitely.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

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
			// Transient notify errors are not actionable here; the
			// next successful event re-drives validation anyway.
		}
	}
}

// handleEvent filters directory events down to the watched file.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	// A rename or remove may be the first half of an atomic replace;
	// re-arm the directory watch in case the directory entry churned.
	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		w.rearm()
	}

	w.mu.Lock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	for _, handler := range handlers {
		w.safeCall(handler)
	}
}

// rearm re-adds the directory watch. Adding an already-watched directory
// is a no-op, so this is safe to call eagerly.
func (w *Watcher) rearm() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	_ = w.fsw.Add(w.dir)
}

// safeCall invokes a handler with panic recovery so a misbehaving
// observer cannot kill the watch goroutine.
func (w *Watcher) safeCall(handler Handler) {
	defer func() {
		_ = recover()
	}()
	handler()
}
