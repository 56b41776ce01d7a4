// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Package wiki fetches article introductions from a MediaWiki action API.

The Client issues one GET per lookup:

	<base_url>?format=json&origin=*&action=query&prop=extracts&explaintext=false&exintro&titles=<key>

and reads the first entry of query.pages. A page flagged missing (or
invalid) is not an error: it comes back as a Summary with Missing set, so
callers can answer "not found" without tripping a circuit breaker.

Resilience:
  - Optional outbound rate limiter (golang.org/x/time/rate), off by default
  - BreakerClient wraps any SummaryClient with sony/gobreaker
  - No retries; a failed lookup fails the request that asked for it
*/
package wiki
