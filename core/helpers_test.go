// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTablePath(t *testing.T, content string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), "akasio.json")
	writeTable(t, fp, content)
	return fp
}

func newTestConfig(t *testing.T, tablePath string) (*Config, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)
	config, err := NewConfig(logger, "127.0.0.1:0", tablePath)
	require.NoError(t, err)
	return config, hook
}
