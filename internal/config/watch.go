// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DebounceDelay is how long Watch waits after the last change to a
// file before reporting it.
var DebounceDelay = 200 * time.Millisecond

// Watch calls onChange with the path of each file in paths that is
// written, created, or renamed into place, until ctx is done. Bursts
// of events for the same file are coalesced. onChange is called from
// a single goroutine.
//
// Watch watches the directories containing paths, so files replaced
// by editors that write a temporary file and rename it are followed.
func Watch(ctx context.Context, logger *zap.Logger, paths []string, onChange func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer w.Close()

	want := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		want[abs] = true
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
			dirs[dir] = true
			logger.Debug("watching directory", zap.String("dir", dir))
		}
	}

	pending := make(map[string]bool)
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !want[name] {
				continue
			}
			logger.Debug("file changed", zap.String("file", name), zap.Stringer("op", ev.Op))
			pending[name] = true
			timer.Reset(DebounceDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("file watcher error", zap.Error(err))

		case <-timer.C:
			for _, p := range paths {
				abs, _ := filepath.Abs(p)
				if pending[abs] {
					delete(pending, abs)
					onChange(p)
				}
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
