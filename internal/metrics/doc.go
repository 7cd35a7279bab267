// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

// Package metrics holds the Prometheus collectors for Fitcurator.
//
// Collectors are package-level and registered with the default registry via
// promauto, so importing the package is enough to have them exported at
// /metrics. Components call the Record* helpers rather than touching the
// vectors directly, which keeps label values in one place.
//
// Exported families:
//
//	fitcurator_cache_*              bounded cache hits, misses, evictions, size
//	fitcurator_catalog_*            upstream catalog calls and quota usage
//	fitcurator_fallback_lookups_*   media provider cascade attempts
//	fitcurator_link_probes_total    HEAD probe results
//	fitcurator_pipeline_*           runs, durations, repair outcomes
//	circuit_breaker_*               gobreaker state around the catalog client
//	api_request_*                   HTTP surface
package metrics
