// Package watch notices filesystem changes around a destination candidate so
// the dialog can classify it again.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fileops/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change is a create, remove or rename seen in the watched directory
type Change struct {
	Dir       string
	Path      string
	Op        fsnotify.Op
	Timestamp time.Time
}

// relevant ops are those that can change whether a path exists
const relevant = fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher follows one directory at a time: the candidate's parent, or its
// nearest existing ancestor while the parent is missing
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	changes   chan Change
	stopChan  chan struct{}

	mutex   sync.RWMutex
	dir     string
	running bool
}

// New creates a watcher. Changes are coalesced: a reader that falls behind
// sees at least one pending Change, never a backlog.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		changes:   make(chan Change, 1),
		stopChan:  make(chan struct{}),
	}, nil
}

// Changes delivers change notifications until Stop
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Dir returns the directory currently watched
func (w *Watcher) Dir() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.dir
}

// Retarget watches the directory that decides candidate's classification.
// It is a no-op when that directory is already watched.
func (w *Watcher) Retarget(candidate string) error {
	dir := NearestDir(filepath.Dir(filepath.Clean(candidate)))

	w.mutex.Lock()
	defer w.mutex.Unlock()
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			log.LogWithFields(log.F("directory", w.dir), log.F("error", err)).Debug("failed to stop watching directory")
		}
		w.dir = ""
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}
	w.dir = dir
	log.LogWithFields(log.F("directory", dir)).Debug("watching directory")
	return nil
}

// NearestDir returns dir or its closest ancestor that exists as a directory
func NearestDir(dir string) string {
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

// Start begins delivering changes
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&relevant == 0 {
				continue
			}
			change := Change{
				Dir:       filepath.Dir(event.Name),
				Path:      event.Name,
				Op:        event.Op,
				Timestamp: time.Now(),
			}
			select {
			case w.changes <- change:
			default:
				// one change is already pending
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// Stop halts the watcher. The Changes channel is closed once the event loop
// has exited.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		if err := w.fsWatcher.Close(); err != nil {
			log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
		}
		return
	}

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	w.running = false
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
