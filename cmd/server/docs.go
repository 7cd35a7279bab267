// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

// @title Fitcurator API
// @version 1.0
// @description Assembles per-category exercise recommendations: catalog fetch, condition filtering, media link repair through fallback providers, and result shaping.
// @description
// @description ## Partial Results
// @description
// @description A category that cannot be fetched is reported in `category_errors` and the
// @description remaining categories are still returned with status 200. Only when every
// @description category fails does the request return 502 `ALL_CATEGORIES_FAILED`.
// @description
// @description ## Rate Limiting
// @description
// @description Recommendation endpoints are limited per client IP (default 60 requests per minute).
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {"code": "VALIDATION_ERROR", "message": "...", "details": {}},
// @description   "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/fitcurator/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Recommendation assembly and memoized result invalidation
//
// @tag.name Health
// @tag.description Service health and liveness
//
//go:generate swag init -g cmd/server/docs.go -d ../../ -o ../../docs --parseInternal

package main
