// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

// Package cache provides the process-wide BoundedCache and the key helpers
// used to address it.
//
// One BoundedCache is constructed in main and shared by the catalog layer,
// the media fallback resolver and the pipeline engine. Each user namespaces
// its keys:
//
//	catalog:<term>:<limit>            upstream search results
//	fallback:<hash>                   winning provider result for a query
//	pipeline:<subject>:<fingerprint>  assembled recommendations
//
// so that InvalidateByPrefix("pipeline:<subject>:") drops everything cached
// for one subject without touching shared catalog data.
//
// Recency ordering comes from hashicorp/golang-lru's simplelru; expiry is
// layered on top and checked lazily on read, plus periodically by the
// supervisor's janitor through CleanupExpired.
package cache
