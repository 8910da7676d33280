// Package watcher provides a debounced single-file watcher used for scene
// hot-reload in the demo apps.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches one file for changes and triggers a debounced
// callback. Editors often emit several write events per save; only the
// last event within the debounce window fires the callback.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	callback func()
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// Watch creates a watcher for the given file and starts delivering
// debounced change notifications to the callback on a background
// goroutine. The caller must Close the watcher when done.
func Watch(path string, debounce time.Duration, callback func()) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory rather than the file itself: many editors save
	// by renaming a temp file over the original, which drops a direct
	// file watch.
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	fw := &FileWatcher{
		watcher:  w,
		path:     absPath,
		callback: callback,
		debounce: debounce,
	}
	go fw.run()
	return fw, nil
}

func (fw *FileWatcher) run() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Name != fw.path {
				continue
			}
			// Only trigger on events that change the file contents
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fw.schedule()
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("Watcher error: %v\n", err)
		}
	}
}

// schedule arms the debounce timer, replacing any pending one
func (fw *FileWatcher) schedule() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, fw.callback)
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()
	return fw.watcher.Close()
}
