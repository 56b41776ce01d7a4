// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Package api provides the HTTP layer for Comunidades: the description
proxy, the region list, health probes, metrics and the static map assets.

Routes:

	GET /descripcion?region=<key>   description proxy (bare JSON body)
	GET /api/v1/regions             region catalog (envelope)
	GET /api/v1/health/live         liveness probe (envelope)
	GET /api/v1/health/ready        readiness probe (envelope)
	GET /metrics                    Prometheus exposition
	GET /images/*, /resources/*, /  files under the public directory

The description proxy keeps a flat contract that browsers can read
directly:

	200 {"extract": "<truncated introduction>"}
	400 {"error": "<missing region message>"}
	404 {"extract": "<not found message>"}
	500 {"error": "<fetch failed message>"}

Everything under /api/v1 uses the APIResponse envelope with success,
data, error and meta fields.

Middleware stack (global, in order): request ID with logging context,
RealIP, Recoverer, CORS, access log. Rate limiting (go-chi/httprate) and
Prometheus instrumentation apply to /descripcion and /api/v1.
*/
package api
