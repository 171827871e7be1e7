package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/philipparndt/goarm/pkg/log"
)

// DefaultDelay is the quiet period before a change is reported
const DefaultDelay = 200 * time.Millisecond

// FileWatcher reports changes to individual files. Bursts of events for the
// same file collapse into one callback after the quiet period.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temp file over the original keep
// triggering reloads.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	logger  log.Logger
	delay   time.Duration

	mu        sync.Mutex
	callbacks map[string]func(string)
	debounced map[string]func(func())
	dirs      map[string]int
	done      chan struct{}
	closeOnce sync.Once
}

// NewFileWatcher creates a watcher; call Start to begin delivering events
func NewFileWatcher(delay time.Duration, logger log.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if delay <= 0 {
		delay = DefaultDelay
	}

	return &FileWatcher{
		watcher:   w,
		logger:    logger.WithField("component", "watcher"),
		delay:     delay,
		callbacks: make(map[string]func(string)),
		debounced: make(map[string]func(func())),
		dirs:      make(map[string]int),
		done:      make(chan struct{}),
	}, nil
}

// Watch registers callback for file. It replaces any earlier callback for
// the same file.
func (fw *FileWatcher) Watch(file string, callback func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, ok := fw.callbacks[absPath]; !ok {
		dir := filepath.Dir(absPath)
		if fw.dirs[dir] == 0 {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
		fw.dirs[dir]++
		fw.debounced[absPath] = debounce.New(fw.delay)
	}
	fw.callbacks[absPath] = callback
	fw.logger.Debugf("watching %s", absPath)
	return nil
}

// Unwatch stops reporting changes to file
func (fw *FileWatcher) Unwatch(file string) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, ok := fw.callbacks[absPath]; !ok {
		return nil
	}
	delete(fw.callbacks, absPath)
	if d, ok := fw.debounced[absPath]; ok {
		// Replace any pending call with a no-op.
		d(func() {})
		delete(fw.debounced, absPath)
	}

	dir := filepath.Dir(absPath)
	fw.dirs[dir]--
	if fw.dirs[dir] <= 0 {
		delete(fw.dirs, dir)
		if err := fw.watcher.Remove(dir); err != nil {
			return fmt.Errorf("failed to unwatch %s: %w", dir, err)
		}
	}
	return nil
}

// Start delivers events on a background goroutine until Close. Callbacks run
// on debounce timer goroutines; hosts must hand results to their own event
// loop.
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case <-fw.done:
				return
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					fw.handleFileChange(event.Name)
				}
			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.logger.Warnf("watcher error: %v", err)
			}
		}
	}()
}

func (fw *FileWatcher) handleFileChange(name string) {
	path, err := filepath.Abs(name)
	if err != nil {
		return
	}

	fw.mu.Lock()
	callback, ok := fw.callbacks[path]
	debounced := fw.debounced[path]
	fw.mu.Unlock()
	if !ok {
		return
	}

	debounced(func() {
		fw.logger.Debugf("change detected: %s", path)
		callback(path)
	})
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	var err error
	fw.closeOnce.Do(func() {
		close(fw.done)
		fw.mu.Lock()
		for path, d := range fw.debounced {
			d(func() {})
			delete(fw.debounced, path)
		}
		fw.callbacks = make(map[string]func(string))
		fw.mu.Unlock()
		err = fw.watcher.Close()
	})
	return err
}
