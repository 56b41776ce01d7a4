// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream lookup results.
const (
	ResultFound    = "found"
	ResultMissing  = "missing"
	ResultError    = "error"
	ResultRejected = "rejected"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Description Upstream Metrics
	DescriptionUpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "description_upstream_requests_total",
			Help: "Total number of encyclopedia lookups by result",
		},
		[]string{"result"}, // found, missing, error, rejected
	)

	DescriptionUpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "description_upstream_duration_seconds",
			Help:    "Duration of encyclopedia lookups in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Map Metrics
	RegionSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "region_selections_total",
			Help: "Total number of region selections by canonical region id",
		},
		[]string{"region"},
	)

	RegionsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "regions_loaded",
			Help: "Number of regions in the loaded GeoJSON feed",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordUpstreamLookup records one encyclopedia lookup and its latency.
func RecordUpstreamLookup(result string, duration time.Duration) {
	DescriptionUpstreamRequests.WithLabelValues(result).Inc()
	DescriptionUpstreamDuration.Observe(duration.Seconds())
}

// RecordRegionSelection counts a selection change of the given region.
func RecordRegionSelection(regionID string) {
	RegionSelections.WithLabelValues(regionID).Inc()
}

// SetRegionsLoaded records the size of the loaded region feed.
func SetRegionsLoaded(n int) {
	RegionsLoaded.Set(float64(n))
}
