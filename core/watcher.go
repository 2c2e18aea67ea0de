// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const watchDebounce = 300 * time.Millisecond

// WatchTable reloads the table at path through source whenever the file
// changes and hands the result to onReload. The directory is watched so that
// editors replacing the file by rename are noticed. The watcher stops when
// ctx is done.
func WatchTable(ctx context.Context, path string, source TableSource, logger logrus.FieldLogger, onReload func(any)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return errors.Wrapf(err, "watch %s", filepath.Dir(target))
	}

	go func() {
		defer w.Close()
		debounce := time.NewTimer(0)
		if !debounce.Stop() {
			<-debounce.C
		}
		for {
			select {
			case <-ctx.Done():
				debounce.Stop()
				return
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(e.Name) != target {
					continue
				}
				if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
					if !debounce.Stop() {
						select {
						case <-debounce.C:
						default:
						}
					}
					debounce.Reset(watchDebounce)
				}
			case <-debounce.C:
				table, err := source.Load(target)
				if err != nil {
					logger.WithError(err).Warn("redirect table reload failed")
					continue
				}
				onReload(table)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.WithError(err).Warn("watch error")
			}
		}
	}()
	return nil
}
