// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Package description turns encyclopedia summaries into the short region
descriptions shown next to the map.

Truncation keeps whole sentences where it can: text longer than the limit
is cut after the first period at or beyond the limit, or hard-cut at the
limit when no such period exists. Lengths count Unicode code points.

	Truncate(strings.Repeat("a", 550)+"."+strings.Repeat("b", 49), 500) // 551 runes, ends in "."

Service is stateless. Every Describe call performs one upstream lookup;
nothing is cached and nothing is retried.
*/
package description
