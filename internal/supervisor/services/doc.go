// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

// Package services adapts components to suture.Service.
//
//   - HTTPServerService: http.Server with graceful shutdown
//   - CacheJanitorService: periodic expiry sweep of the shared BoundedCache
package services
