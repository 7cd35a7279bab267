// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

// Package catalog is the client for the upstream exercise catalog.
//
// The layers compose as Fetcher implementations:
//
//	client := catalog.NewClient(&cfg.Catalog)              // quota, deadline, schema
//	var f catalog.Fetcher = client
//	if cfg.Catalog.CircuitBreaker {
//	    f = catalog.NewCircuitBreakerClient(client, catalog.BreakerSettings{})
//	}
//	f = catalog.NewCachedCatalog(f, sharedCache, cfg.Cache.CatalogTTL)
//
// Every failure is a *FetchError whose Kind is one of rate_limit_exceeded,
// timeout, upstream_error, transport_error or malformed_response. Nothing in
// this package retries.
package catalog
