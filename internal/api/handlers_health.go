// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Always 200 while the process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 while the upstream circuit breaker is open, since every
// description lookup would fail fast.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	breaker := "disabled"
	if h.breakerState != nil {
		breaker = h.breakerState()
	}
	ready := h.descriptions != nil && breaker != "open"

	data := map[string]interface{}{
		"ready_to_serve": ready,
		"regions_loaded": h.catalog.Len(),
		"breaker_state":  breaker,
		"uptime":         time.Since(h.startTime).Seconds(),
	}

	if !ready {
		NewResponseWriter(w, r).WithStatus(http.StatusServiceUnavailable, data)
		return
	}
	NewResponseWriter(w, r).Success(data)
}
