// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Package metrics defines the Prometheus collectors exported on /metrics.

Collectors are registered on the default registry through promauto at
package init. Callers use the Record* helpers rather than touching the
vectors directly.

# API

  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

The endpoint label is the chi route pattern, never the raw path, so label
cardinality stays bounded.

# Description Upstream

  - description_upstream_requests_total{result}: found, missing, error, rejected
  - description_upstream_duration_seconds

# Circuit Breaker

  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_transitions_total{name,from_state,to_state}

# Map

  - region_selections_total{region}: bounded by the number of regions
  - regions_loaded

# Example Alerts

	- alert: EncyclopediaBreakerOpen
	  expr: circuit_breaker_state{name="wiki-api"} == 2
	  for: 5m
*/
package metrics
