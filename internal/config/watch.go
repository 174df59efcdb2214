// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// ReloadInterval is the minimum time between two reloads triggered by
// Watch. Editors often write a file several times per save.
const ReloadInterval = 250 * time.Millisecond

// Watch reloads path whenever it changes and passes the result to onChange
// until ctx is cancelled. onChange receives either a fresh config or the
// load error. Bursts of events collapse into at most one reload per
// ReloadInterval, with a trailing reload so the final write is never
// missed.
//
// The parent directory is watched rather than the file, so atomic saves
// that rename a temp file over path are seen.
func Watch(ctx context.Context, path string, onChange func(*Config, error)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	go watchLoop(ctx, watcher, absPath, onChange)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, onChange func(*Config, error)) {
	defer watcher.Close()

	limiter := rate.NewLimiter(rate.Every(ReloadInterval), 1)
	var trailing <-chan time.Time

	reload := func() {
		onChange(LoadFromPath(path))
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if trailing != nil {
				continue
			}
			r := limiter.Reserve()
			if d := r.Delay(); d > 0 {
				trailing = time.After(d)
				continue
			}
			reload()

		case <-trailing:
			trailing = nil
			reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			onChange(nil, fmt.Errorf("config watcher: %w", err))
		}
	}
}
