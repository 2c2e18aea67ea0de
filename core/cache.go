// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
)

// Load reads the table file on every call, so a change on disk is seen by the
// very next request. Only the JSON decoding is skipped while the bytes are
// identical to the last decoded content. Failures are never cached.
func (c *TableCache) Load(path string) (any, error) {
	if filepath.Clean(path) != filepath.Clean(c.path) {
		return LoadTable(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	c.mu.Lock()
	if c.raw != nil && bytes.Equal(c.raw, content) {
		table := c.table
		c.mu.Unlock()
		return table, nil
	}
	c.mu.Unlock()

	table, err := parseTable(path, content)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.raw = content
	c.table = table
	c.mu.Unlock()

	return table, nil
}

// Watch decodes the table ahead of the next request whenever the file
// changes. Load stays correct without it.
func (c *TableCache) Watch(ctx context.Context) error {
	return WatchTable(ctx, c.path, c, c.logger, func(table any) {
		entries := 0
		if m, ok := table.(map[string]any); ok {
			entries = len(m)
		}
		c.logger.WithField("table", c.path).WithField("entries", entries).Info("redirect table reloaded")
	})
}
