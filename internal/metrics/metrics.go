// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Bounded cache
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitcurator_cache_hits_total",
			Help: "Total number of bounded cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitcurator_cache_misses_total",
			Help: "Total number of bounded cache misses, including expired reads",
		},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcurator_cache_evictions_total",
			Help: "Total number of entries removed from the bounded cache",
		},
		[]string{"reason"}, // "capacity", "expired"
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitcurator_cache_entries",
			Help: "Current number of entries held by the bounded cache",
		},
	)

	CacheApproxBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitcurator_cache_approx_bytes",
			Help: "Approximate size of cached values in bytes",
		},
	)

	// Catalog fetch client
	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcurator_catalog_requests_total",
			Help: "Catalog requests by outcome",
		},
		[]string{"outcome"}, // "success" or a fetch error kind
	)

	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitcurator_catalog_request_duration_seconds",
			Help:    "Duration of catalog requests that reached the network",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	CatalogQuotaUsed = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fitcurator_catalog_quota_used",
			Help: "Catalog requests counted against the current window",
		},
		[]string{"window"}, // "minute", "day"
	)

	// Media fallback
	FallbackLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcurator_fallback_lookups_total",
			Help: "Fallback provider lookups by provider and outcome",
		},
		[]string{"provider", "outcome"}, // outcome: "hit", "empty", "error", "skipped", "cached"
	)

	LinkProbes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcurator_link_probes_total",
			Help: "Media link health probes by result",
		},
		[]string{"result"}, // "reachable", "unreachable"
	)

	// Pipeline
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcurator_pipeline_runs_total",
			Help: "Pipeline runs by outcome",
		},
		[]string{"outcome"}, // "complete", "partial", "failed", "cached"
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fitcurator_pipeline_duration_seconds",
			Help:    "Wall time of uncached pipeline runs",
			Buckets: prometheus.DefBuckets,
		},
	)

	RepairOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcurator_repair_outcomes_total",
			Help: "Per-item media repair outcomes",
		},
		[]string{"action"}, // "kept", "replaced", "unrepaired"
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fitcurator_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcurator_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcurator_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// HTTP API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcurator_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitcurator_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// RecordCatalogRequest records one catalog call. outcome is "success" or the
// fetch error kind; duration is zero for calls refused before the network.
func RecordCatalogRequest(endpoint, outcome string, duration time.Duration) {
	CatalogRequests.WithLabelValues(outcome).Inc()
	if duration > 0 {
		CatalogRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
	}
}

// UpdateCatalogQuota publishes the current rate window usage.
func UpdateCatalogQuota(minute, day int) {
	CatalogQuotaUsed.WithLabelValues("minute").Set(float64(minute))
	CatalogQuotaUsed.WithLabelValues("day").Set(float64(day))
}

// RecordFallbackLookup records one provider attempt in the cascade.
func RecordFallbackLookup(provider, outcome string) {
	FallbackLookups.WithLabelValues(provider, outcome).Inc()
}

// RecordLinkProbe records a health probe result.
func RecordLinkProbe(reachable bool) {
	if reachable {
		LinkProbes.WithLabelValues("reachable").Inc()
		return
	}
	LinkProbes.WithLabelValues("unreachable").Inc()
}

// RecordPipelineRun records a finished run. duration is ignored for cached runs.
func RecordPipelineRun(outcome string, duration time.Duration) {
	PipelineRuns.WithLabelValues(outcome).Inc()
	if outcome != "cached" {
		PipelineDuration.Observe(duration.Seconds())
	}
}

// RecordRepair records one item's repair action.
func RecordRepair(action string) {
	RepairOutcomes.WithLabelValues(action).Inc()
}

// UpdateCacheGauges publishes the cache size.
func UpdateCacheGauges(entries int, approxBytes int64) {
	CacheEntries.Set(float64(entries))
	CacheApproxBytes.Set(float64(approxBytes))
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
