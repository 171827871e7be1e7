package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/goarm/pkg/pose"
	"github.com/philipparndt/goarm/pkg/watcher"
)

// loadPose reads path, or returns the seed pose when path is empty
func loadPose(path string) (pose.Snapshot, error) {
	if path == "" {
		return pose.Default(), nil
	}
	return pose.LoadFile(path)
}

// setupFileWatcher reloads the pose file in the background whenever it
// changes. Results are handed to the main loop through channels.
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(watcher.DefaultDelay, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		app.logger.Infof("pose file changed: %s", changedFile)
		s, err := pose.LoadFile(changedFile)
		if err != nil {
			replaceLatest(app.FileWatch.loadErrors, err)
			return
		}
		replaceLatest(app.FileWatch.loaded, s)
	}

	if err := fw.Watch(app.FileWatch.sourceFile, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	app.logger.Infof("watching %s for changes", app.FileWatch.sourceFile)
	return nil
}

// applyLoadedPose applies a reloaded pose (must be called on main thread)
func (app *App) applyLoadedPose() {
	select {
	case s := <-app.FileWatch.loaded:
		if err := app.Editor.Store().Replace(s); err != nil {
			app.FileWatch.lastReloadErr = err
			app.logger.Warnf("ignoring reloaded pose: %v", err)
			return
		}
		app.FileWatch.lastReload = time.Now()
		app.FileWatch.lastReloadErr = nil
		app.logger.Infof("pose reloaded (%d joints)", len(s.Vertices))
	case err := <-app.FileWatch.loadErrors:
		app.FileWatch.lastReloadErr = err
		app.logger.Warnf("failed to reload pose: %v", err)
	default:
	}
}

// replaceLatest stores v in a one-slot channel, dropping any older value
func replaceLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
