// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package main

import (
	"net/http"

	"github.com/tomtom215/comunidades/internal/api"
	"github.com/tomtom215/comunidades/internal/config"
	"github.com/tomtom215/comunidades/internal/description"
	"github.com/tomtom215/comunidades/internal/logging"
	"github.com/tomtom215/comunidades/internal/metrics"
	"github.com/tomtom215/comunidades/internal/regions"
	"github.com/tomtom215/comunidades/internal/wiki"
)

// loadCatalog reads the region feed. Failures are logged and yield a nil
// catalog, which every consumer treats as empty.
func loadCatalog(path string) *regions.Catalog {
	list, err := regions.LoadFeedFile(path)
	if err != nil {
		logging.Error().Err(err).Str("path", path).Msg("Failed to load region feed, serving an empty catalog")
		return nil
	}
	catalog, err := regions.NewCatalog(list)
	if err != nil {
		logging.Error().Err(err).Str("path", path).Msg("Failed to index region feed, serving an empty catalog")
		return nil
	}
	metrics.SetRegionsLoaded(catalog.Len())
	logging.Info().Int("regions", catalog.Len()).Str("path", path).Msg("Region feed loaded")
	return catalog
}

// buildHandler wires the encyclopedia client, the description service and
// the region catalog into the HTTP routes.
func buildHandler(cfg *config.Config, catalog *regions.Catalog) http.Handler {
	var summaries wiki.SummaryClient = wiki.NewClient(&cfg.Wiki)
	var breaker *wiki.BreakerClient
	if cfg.Wiki.BreakerEnabled {
		breaker = wiki.NewBreakerClient(summaries)
		summaries = breaker
	}

	messages := description.MessagesFor(cfg.Description.Locale)
	svc := description.NewService(summaries, cfg.Description.MaxLength, messages)

	handler := api.NewHandler(svc, catalog)
	if breaker != nil {
		handler.ConfigureBreakerState(breaker.State)
	}

	logging.Info().
		Str("wiki_api", cfg.Wiki.BaseURL).
		Bool("circuit_breaker", cfg.Wiki.BreakerEnabled).
		Float64("wiki_rate_limit", cfg.Wiki.RatePerSecond).
		Int("max_length", cfg.Description.MaxLength).
		Str("locale", cfg.Description.Locale).
		Msg("Description proxy configured")

	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security), cfg.Server.PublicDir)
	return router.SetupChi()
}
