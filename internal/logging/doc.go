// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Package logging provides the zerolog-based logger shared by every Comunidades
component.

A single global logger is configured once from main via Init and then used
through the package-level helpers:

	logging.Init(logging.Config{Level: "info", Format: "json"})
	logging.Info().Str("region", key).Msg("Description served")

Request-scoped logging goes through Ctx, which attaches the request_id and
correlation_id placed in the context by the HTTP middleware:

	logging.Ctx(r.Context()).Warn().Err(err).Msg("Upstream lookup failed")

Components that want a fixed field set use Component:

	log := logging.Component("wiki")
	log.Debug().Str("title", key).Msg("Querying extracts")

# Configuration

Environment variables (mapped through internal/config):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

# slog Bridge

NewSlogLogger returns a *slog.Logger backed by zerolog. The supervisor tree
uses it for sutureslog event hooks so restarts and failures land in the same
stream as request logs.

# Log Injection

Values that come from query strings (region keys) must pass through
SanitizeValue before being logged.
*/
package logging
