// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

/*
Package api exposes the recommendation pipeline over HTTP using the chi router.

Routes:

	POST   /api/v1/recommendations              assemble recommendations
	DELETE /api/v1/recommendations/{subjectID}  drop memoized results for a subject
	GET    /api/v1/health                       cache, quota and provider status
	GET    /api/v1/health/live                  liveness probe
	GET    /metrics                             Prometheus exposition
	GET    /swagger/*                           OpenAPI document and UI

Every JSON response uses the models.APIResponse envelope. Partial success
(some categories failed) is a 200 with category_errors populated; a request in
which every category failed is a 502 with code ALL_CATEGORIES_FAILED.

Middleware, outermost first: request ID with logging context, real IP, panic
recovery, CORS, then per-IP rate limiting (go-chi/httprate), security headers
and Prometheus request metrics on the API group.
*/
package api
