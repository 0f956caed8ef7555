package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch regenerates a description file whenever it is written, until ctx
// is done. Directories are watched rather than files so that editors that
// replace files on save are followed.
func (a *app) watch(ctx context.Context, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]string, len(paths))
	dirs := make(map[string]bool)

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}

		targets[abs] = path

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}

		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}

		dirs[dir] = true
	}

	a.logger.Info("watching description files", "files", len(targets))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			path, ok := targets[filepath.Clean(event.Name)]
			if !ok {
				continue
			}

			a.logger.Info("description changed", "file", path)
			a.generate(ctx, []string{path})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			a.logger.Error("watch error", "error", err)
		}
	}
}
