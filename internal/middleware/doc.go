// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Package middleware provides HTTP middleware written against
http.HandlerFunc and adapted into chi with api.chiMiddleware.

  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern so label cardinality stays bounded
  - AccessLog: one structured zerolog line per request, carrying the
    request and correlation IDs set by the request ID middleware
  - Compression: gzip for large static payloads such as the GeoJSON feed

Usage:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.With(chiMiddleware(middleware.Compression)).Handle("/resources/*", files)
*/
package middleware
