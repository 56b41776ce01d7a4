// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/comunidades/internal/middleware"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	publicDir     string // empty disables static file serving
}

// NewRouter creates a router. publicDir holds index.html, images/ and
// resources/.
func NewRouter(handler *Handler, chiMW *ChiMiddleware, publicDir string) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
		publicDir:     publicDir,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(Recoverer(PanicEnvelope))
	r.Use(router.chiMiddleware.CORS()) // Global so OPTIONS preflight is answered
	r.Use(chiMiddleware(middleware.AccessLog))

	// ========================
	// Description Proxy
	// ========================
	// Metrics wrap the limiter so throttled requests are counted.
	r.With(
		chiMiddleware(middleware.PrometheusMetrics),
		Recoverer(router.handler.DescriptionPanicked),
		router.chiMiddleware.RateLimitWith(router.handler.DescriptionRateLimited),
	).Get("/descripcion", router.handler.Description)

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Region Catalog
	// ========================
	r.Route("/api/v1/regions", func(r chi.Router) {
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Regions)
		r.Get("/{id}", router.handler.Region)
	})

	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Static Map Assets
	// ========================
	if router.publicDir != "" {
		files := http.FileServer(http.Dir(router.publicDir))
		r.With(chiMiddleware(middleware.Compression)).Handle("/resources/*", files)
		r.Handle("/images/*", files)
		r.Handle("/*", files)
	}

	return r
}
