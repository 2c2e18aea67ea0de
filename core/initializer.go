// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

func NewRedirectHandler(config *Config, source TableSource) *RedirectHandler {
	if source == nil {
		source = FileTableSource{}
	}
	return &RedirectHandler{
		config: config,
		source: source,
	}
}

// NewTableCache returns a cache for the table at the config's table path.
func NewTableCache(config *Config) *TableCache {
	return &TableCache{
		path:   config.TablePath(),
		logger: config.Logger(),
	}
}

// NewRouter installs handler as the catch-all route for every path and
// method. Paths are not cleaned.
func NewRouter(handler http.Handler) *mux.Router {
	r := mux.NewRouter()
	r.SkipClean(true)
	r.PathPrefix("/").Handler(handler)
	r.NotFoundHandler = handler
	r.MethodNotAllowedHandler = handler
	return r
}

func NewServer(config *Config, source TableSource) *Server {
	logger := config.Logger()
	handler := ChainMiddleware(
		NewRouter(NewRedirectHandler(config, source)),
		RequestIDMiddleware(logger),
		AccessLogMiddleware(logger),
		RecoveryMiddleware(logger),
	)
	return &Server{
		config:  config,
		handler: handler,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			ErrorLog:          newServerErrorLog(logger),
		},
	}
}
