// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/comunidades/internal/logging"
)

// AccessLog writes one log line per request. Server errors log at warn,
// everything else at debug so normal traffic stays quiet at the default
// info level.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := newStatusResponseWriter(w)

		next(wrapper, r)

		logger := logging.Ctx(r.Context())
		var event *zerolog.Event
		if wrapper.statusCode >= http.StatusInternalServerError {
			event = logger.Warn()
		} else {
			event = logger.Debug()
		}
		event.
			Str("method", r.Method).
			Str("route", routeLabel(r.Context())).
			Str("path", logging.SanitizeValue(r.URL.Path)).
			Int("status", wrapper.statusCode).
			Int("bytes", wrapper.bytes).
			Str("remote_addr", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	}
}
