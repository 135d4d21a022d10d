package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/staticproof/errors"
	"github.com/teranos/staticproof/logger"
)

// Watcher watches Go source directories (and the project config file, if
// any) and triggers a debounced callback on change. It backs
// `staticproof check --watch`.
type Watcher struct {
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// ChangeCallback is called after the debounce period once a watched file
// has changed.
type ChangeCallback func()

// NewWatcher creates a watcher over the given directories.
func NewWatcher(dirs []string, debounce time.Duration) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	seen := make(map[string]bool)
	for _, dir := range dirs {
		dir = filepath.Clean(dir)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to watch directory %s", dir)
		}
	}

	if path := findProjectConfig(); path != "" {
		if err := watcher.Add(path); err != nil {
			logger.Logger.Warnw("Could not watch project config",
				logger.FieldFile, path,
				logger.FieldError, err)
		}
	}

	w := &Watcher{
		watcher:        watcher,
		callbacks:      make([]ChangeCallback, 0),
		debouncePeriod: debounce,
	}

	return w, nil
}

// OnChange registers a callback to be called when a watched file changes
func (w *Watcher) OnChange(callback ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !isRelevantFile(event.Name) {
				continue
			}

			logger.Logger.Debugw("Watcher detected change",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.scheduleCallbacks()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Logger.Warnw("Watcher error",
				logger.FieldError, err)
		}
	}
}

// scheduleCallbacks debounces rapid file changes before notifying
func (w *Watcher) scheduleCallbacks() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		w.mu.RLock()
		callbacks := make([]ChangeCallback, len(w.callbacks))
		copy(callbacks, w.callbacks)
		w.mu.RUnlock()

		for _, callback := range callbacks {
			callback()
		}
	})
}

// Stop stops watching for changes
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// isRelevantFile reports whether a change to the file should trigger a
// re-check: Go sources and the project config, ignoring editor temp files.
func isRelevantFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	return strings.HasSuffix(base, ".go") || base == ConfigFileName
}
