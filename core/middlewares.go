// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ChainMiddleware wraps handler so that middlewares[0] runs first.
func ChainMiddleware(handler http.Handler, middlewares ...AkasioMiddleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

// RequestIDMiddleware tags each request with a fresh id and stores a logger
// carrying it in the request context.
func RequestIDMiddleware(logger logrus.FieldLogger) AkasioMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			entry := logger.WithField("request_id", uuid.NewString())
			next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), entry)))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *statusRecorder) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.size += n
	return n, err
}

// AccessLogMiddleware emits one debug line per request.
func AccessLogMiddleware(logger logrus.FieldLogger) AkasioMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			LoggerFromContext(r.Context(), logger).WithFields(logrus.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"bytes":       rec.size,
				"remote_addr": r.RemoteAddr,
				"duration":    time.Since(start).String(),
			}).Debug("request served")
		})
	}
}

// RecoveryMiddleware turns a panic in the handler into a plain 500 response.
func RecoveryMiddleware(logger logrus.FieldLogger) AkasioMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				LoggerFromContext(r.Context(), logger).
					WithField("path", r.URL.Path).
					WithField("panic", rec).
					Error("recovered from handler panic")
				internalErrorResponse().Write(w)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
