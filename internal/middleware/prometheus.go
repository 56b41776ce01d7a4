// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/comunidades/internal/metrics"
)

// PrometheusMetrics records request count, duration and in-flight requests.
// The endpoint label is read after the handler runs, once chi has resolved
// the full route pattern.
func PrometheusMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		wrapper := newStatusResponseWriter(w)

		next(wrapper, r)

		metrics.RecordAPIRequest(
			r.Method,
			routeLabel(r.Context()),
			strconv.Itoa(wrapper.statusCode),
			time.Since(start),
		)
	}
}
