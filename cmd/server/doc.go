// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Command server runs the Comunidades map server.

It serves the static map (index.html, flag images under /images and the
GeoJSON feed under /resources), the description proxy at /descripcion, the
region catalog under /api/v1/regions, health probes and Prometheus metrics.

# Startup

 1. Configuration: .env files, config.yaml (or CONFIG_PATH), environment
 2. Logging: zerolog with LOG_LEVEL, LOG_FORMAT and LOG_CALLER
 3. Region feed: REGIONS_FEED is parsed into the catalog. A broken feed is
    logged and the server starts with an empty catalog.
 4. Encyclopedia client: WIKI_API_URL with optional WIKI_RATE_LIMIT and,
    unless WIKI_CIRCUIT_BREAKER=false, a circuit breaker
 5. HTTP server under the supervisor tree

# Signals

SIGINT and SIGTERM cancel the supervisor. In-flight requests get
SHUTDOWN_TIMEOUT to finish.

# Example

	export PORT=3001
	export DESCRIPTION_LOCALE=es
	export PUBLIC_DIR=./public
	./comunidades

	curl 'http://localhost:3001/descripcion?region=Arag%C3%B3n'
*/
package main
