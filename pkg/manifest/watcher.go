package manifest

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch blocks until ctx is done, re-running Discover whenever a manifest
// file in a watched directory is created, written, removed, or renamed.
// Directories that do not exist when Watch starts are not picked up later;
// callers wanting that should re-invoke Watch after creating them.
func (e *Environment) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watching := 0
	for _, dir := range e.dirs {
		if err := watcher.Add(dir); err != nil {
			e.log.Debugf("Not watching %s: %v", dir, err)
			continue
		}
		watching++
	}
	if watching == 0 {
		return fmt.Errorf("no manifest directories available to watch")
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isManifestFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			e.log.Debugf("Manifest change detected: %s (%s)", event.Name, event.Op)
			if err := e.Discover(); err != nil {
				e.log.Warnf("Rescan after %s failed: %v", event.Name, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.log.Warnf("Watcher error: %v", err)
		}
	}
}
