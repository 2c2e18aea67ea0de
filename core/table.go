// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"encoding/json"
	"os"
)

// LoadTable reads the redirect table at path and decodes it into a generic
// JSON value. The shape of the value is not checked here.
func LoadTable(path string) (any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return parseTable(path, content)
}

func parseTable(path string, content []byte) (any, error) {
	var table any
	if err := json.Unmarshal(content, &table); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return table, nil
}

func (FileTableSource) Load(path string) (any, error) {
	return LoadTable(path)
}
