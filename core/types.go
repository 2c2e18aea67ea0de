// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"net"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
)

// Config holds the process-wide settings shared by every request handler.
// It is never mutated after NewConfig returns.
type Config struct {
	logger    *logrus.Logger
	bind      string
	tablePath string
}

// FileConfig is the on-disk representation of the akasio settings.
type FileConfig struct {
	Bind      string `json:"bind,omitempty" yaml:"bind,omitempty"`
	Table     string `json:"table,omitempty" yaml:"table,omitempty"`
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty"`
	LogFile   string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	Cache     bool   `json:"cache,omitempty" yaml:"cache,omitempty"`
}

type LogOptions struct {
	Level  string
	Format string
	File   string // rotated with lumberjack when set
}

// TableSource loads the redirect table stored at path.
type TableSource interface {
	Load(path string) (any, error)
}

// FileTableSource reads and parses the table on every call.
type FileTableSource struct{}

// TableCache is a TableSource that reuses the last parsed table while the
// file content is unchanged.
type TableCache struct {
	path   string
	logger logrus.FieldLogger

	mu    sync.Mutex
	raw   []byte
	table any
}

type OutcomeKind int

const (
	Found OutcomeKind = iota
	NotFound
	MalformedEntry
)

// Outcome is the result of looking a request path up in a redirect table.
type Outcome struct {
	Kind        OutcomeKind
	Destination string // set only when Kind is Found
}

// Response is the complete HTTP answer to a single request.
type Response struct {
	Status   int
	Location string
	Body     string
}

type RedirectHandler struct {
	config *Config
	source TableSource
}

type Server struct {
	config     *Config
	handler    http.Handler
	httpServer *http.Server
	listener   net.Listener
}

type AkasioMiddleware func(next http.Handler) http.Handler
