// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Package config loads Comunidades configuration with Koanf v2.

Sources are layered, highest priority last:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, config.yaml, config.yml,
    /etc/comunidades/config.yaml
 3. Environment variables, after .env files have been loaded with godotenv

Only environment variables listed in envTransformFunc are read; anything
else in the environment is ignored.

# Environment Variables

Server:
  - PORT / HTTP_PORT: listen port (default: 3001)
  - HTTP_HOST: listen host (default: 0.0.0.0)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - PUBLIC_DIR: static asset directory (default: public)
  - REGIONS_FEED: GeoJSON feed path (default: public/resources/spain-communities.geojson)

Encyclopedia upstream:
  - WIKI_API_URL: MediaWiki action API endpoint (default: https://es.wikipedia.org/w/api.php)
  - WIKI_USER_AGENT: User-Agent sent upstream
  - WIKI_TIMEOUT: client timeout, 0 keeps the transport default (default: 0)
  - WIKI_RATE_LIMIT: outbound requests per second, 0 disables (default: 0)
  - WIKI_RATE_BURST: limiter burst (default: 5)
  - WIKI_CIRCUIT_BREAKER: wrap the client in a circuit breaker (default: true)

Descriptions:
  - DESCRIPTION_MAX_LENGTH: truncation threshold in characters (default: 500)
  - DESCRIPTION_LOCALE: en or es (default: en)

Security:
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW / DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example config.yaml

	server:
	  port: 3001
	  public_dir: ./public
	wiki:
	  rate_per_second: 2
	description:
	  locale: es
*/
package config
