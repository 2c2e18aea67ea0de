// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	notFoundBody      = "Not Found"
	internalErrorBody = "Internal Server Error"
)

func redirectResponse(destination string) *Response {
	return &Response{Status: http.StatusFound, Location: destination}
}

func notFoundResponse() *Response {
	return &Response{Status: http.StatusNotFound, Body: notFoundBody}
}

func internalErrorResponse() *Response {
	return &Response{Status: http.StatusInternalServerError, Body: internalErrorBody}
}

// Write sends r to w. The Location header is written verbatim.
func (r *Response) Write(w http.ResponseWriter) {
	if r.Status == http.StatusFound {
		w.Header().Set("Location", r.Location)
	}
	if r.Body != "" {
		w.Header().Set("Content-Type", "text/plain")
	}
	w.WriteHeader(r.Status)
	if r.Body != "" {
		_, _ = io.WriteString(w, r.Body)
	}
}

// Handle runs the redirect pipeline for requestPath: load the table, resolve
// the path, map the outcome to a response. Every outcome is logged once.
func (h *RedirectHandler) Handle(logger logrus.FieldLogger, requestPath string) *Response {
	if logger == nil {
		logger = h.config.Logger()
	}
	logger = logger.WithField("path", requestPath)

	table, err := h.source.Load(h.config.TablePath())
	if err != nil {
		logger.WithError(err).Error("failed to load the redirect table")
		return internalErrorResponse()
	}

	outcome := Resolve(table, requestPath)
	switch outcome.Kind {
	case Found:
		logger.WithField("destination", outcome.Destination).
			Infof("redirecting %s to %s", requestPath, outcome.Destination)
		return redirectResponse(outcome.Destination)
	case NotFound:
		logger.Warnf("no redirect for %s", requestPath)
		return notFoundResponse()
	case MalformedEntry:
		logger.WithField("table", h.config.TablePath()).
			Errorf("redirect entry for %s is not a string", requestPath)
		return internalErrorResponse()
	default:
		logger.Errorf("unexpected outcome %v", outcome.Kind)
		return internalErrorResponse()
	}
}

// ServeHTTP answers every method the same way; only the URL path is read.
func (h *RedirectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := LoggerFromContext(r.Context(), h.config.Logger())
	h.Handle(logger.WithField("method", r.Method), r.URL.Path).Write(w)
}
