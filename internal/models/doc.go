// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

/*
Package models defines the value types passed between Fitcurator components
and returned by the HTTP API.

Domain types:

  - CandidateItem: one exercise fetched from the catalog. Never mutated in
    place; WithFallback returns a repaired copy.
  - FallbackMedia: a media descriptor returned by a fallback provider.
  - PipelineResult: the shaped items of one requested category.
  - SubjectAttributes: the requesting subject's profile, used for safety
    filtering and as part of the result cache key.

API envelope:

  - APIResponse, Metadata, APIError: the response wrapper shared by all
    endpoints.

All types are plain values. Slices are copied by Clone so a value handed to
or read from the shared cache cannot be modified through another reference.
*/
package models
