// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTable(t *testing.T) {
	fp := newTablePath(t, `{"/go": "https://golang.org", "/n": 1}`)

	table, err := LoadTable(fp)
	require.NoError(t, err)
	entries, ok := table.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://golang.org", entries["/go"])
	assert.Equal(t, float64(1), entries["/n"])
}

func TestLoadTable_NonObjectIsAccepted(t *testing.T) {
	fp := newTablePath(t, `["/go"]`)

	table, err := LoadTable(fp)
	require.NoError(t, err)
	assert.Equal(t, []any{"/go"}, table)
}

func TestLoadTable_Missing(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "missing.json")

	_, err := LoadTable(fp)
	var readErr *ReadError
	require.True(t, errors.As(err, &readErr), "got %v", err)
	assert.Equal(t, fp, readErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadTable_InvalidJSON(t *testing.T) {
	for _, content := range []string{"", "{", `{"/go": }`, "not json", `{"/a": "b"} trailing`} {
		fp := newTablePath(t, content)

		_, err := LoadTable(fp)
		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr), "content %q: got %v", content, err)
	}
}

func TestFileTableSource_ReadsEveryTime(t *testing.T) {
	fp := newTablePath(t, `{"/a": "one"}`)
	source := FileTableSource{}

	first, err := source.Load(fp)
	require.NoError(t, err)
	writeTable(t, fp, `{"/a": "two"}`)
	second, err := source.Load(fp)
	require.NoError(t, err)

	assert.Equal(t, "one", first.(map[string]any)["/a"])
	assert.Equal(t, "two", second.(map[string]any)["/a"])
}
