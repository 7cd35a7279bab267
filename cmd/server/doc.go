// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

// Package main is the entry point for the Fitcurator server.
//
// Fitcurator assembles per-category exercise recommendations from an
// upstream catalog, filters them against a subject's conditions, repairs
// items whose demonstration media is unreachable through a cascade of media
// providers, and serves the result over a small JSON API.
//
// # Startup Order
//
//  1. Configuration (koanf: defaults, optional YAML, environment)
//  2. Logging (zerolog)
//  3. Shared bounded cache
//  4. Catalog client, circuit breaker and read-through cache
//  5. Media providers and the fallback resolver
//  6. Link prober
//  7. Pipeline engine
//  8. HTTP router and server
//  9. Supervisor tree: cache janitor (data layer) and HTTP server (API layer)
//
// # Example Usage
//
//	export CATALOG_BASE_URL=https://catalog.example.com/api/v1
//	export CATALOG_API_KEY=your-key
//	export GIPHY_API_KEY=your-giphy-key
//	./fitcurator
//
// Or with a config file:
//
//	CONFIG_PATH=/etc/fitcurator/config.yaml ./fitcurator
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The supervisor stops the HTTP
// server within server.shutdown_timeout and reports any service that failed
// to stop.
package main
