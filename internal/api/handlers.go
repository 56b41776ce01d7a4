// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package api

import (
	"context"
	"time"

	"github.com/tomtom215/comunidades/internal/description"
	"github.com/tomtom215/comunidades/internal/regions"
)

// Describer produces region descriptions. *description.Service implements it.
type Describer interface {
	Describe(ctx context.Context, key string) (description.Result, error)
	Messages() description.Messages
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_description.go: /descripcion proxy
//   - handlers_regions.go: region catalog
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	descriptions Describer
	catalog      *regions.Catalog // nil when the feed failed to load
	breakerState func() string    // nil when no circuit breaker is configured
	startTime    time.Time
}

// NewHandler creates a handler. catalog may be nil.
func NewHandler(descriptions Describer, catalog *regions.Catalog) *Handler {
	return &Handler{
		descriptions: descriptions,
		catalog:      catalog,
		startTime:    time.Now(),
	}
}

// ConfigureBreakerState reports the upstream circuit breaker in readiness
// checks. fn returns closed, half-open or open.
func (h *Handler) ConfigureBreakerState(fn func() string) {
	h.breakerState = fn
}
