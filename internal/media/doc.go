// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

/*
Package media finds replacement demonstration media when a catalog item's own
media link is dead.

A Resolver walks an ordered list of Providers (Giphy, Pixabay, Unsplash by
default) and returns the first non-empty result set. Results are never merged
across providers. Each provider requests its strictest safe-content filter,
runs under its own deadline and, optionally, its own golang.org/x/time/rate
limiter; a refused token is treated the same as a failed request.

Successful resolutions are cached in the shared BoundedCache under the
"fallback:" namespace, keyed by the normalized query and limit:

	resolver := media.NewResolver(boundedCache, time.Hour, providers...)
	res := resolver.Resolve(ctx, media.QueryTerms{Name: "push-up", Regions: []string{"chest"}}, 1)
	if !res.Success {
		// no fallback available; keep the original item
	}

Resolve never returns an error. Total failure is reported as Success=false
with an empty item list.
*/
package media
