// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/fitcurator/internal/logging"
	"github.com/tomtom215/fitcurator/internal/models"
	"github.com/tomtom215/fitcurator/internal/pipeline"
)

// RecommendationRequest is the body of POST /api/v1/recommendations.
type RecommendationRequest struct {
	SubjectID  string                   `json:"subject_id" validate:"required,max=128"`
	Categories []string                 `json:"categories" validate:"required,min=1,max=20,dive,category_key"`
	Attributes models.SubjectAttributes `json:"attributes"`
}

// InvalidateResponse is the body of a successful DELETE.
type InvalidateResponse struct {
	SubjectID   string `json:"subject_id"`
	Invalidated int    `json:"invalidated"`
}

type runResult struct {
	out *pipeline.Output
	err error
}

// Recommendations handles POST /api/v1/recommendations.
//
// The run continues in the background if the request deadline passes; the
// client gets a 504 and any result is still memoized for the next call.
//
// @Summary Assemble recommendations
// @Description Fetches each category from the catalog, filters items against the subject's conditions, repairs unreachable media through the fallback providers and returns the shaped results. Categories that fail are listed in category_errors; the request only fails when every category failed.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body RecommendationRequest true "Subject, categories and attributes"
// @Success 200 {object} models.APIResponse{data=pipeline.Output} "Recommendations, possibly partial"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Failure 502 {object} models.APIResponse "No category could be fetched"
// @Failure 504 {object} models.APIResponse "Request deadline passed"
// @Router /recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body RecommendationRequest
	if err := decodeJSONBody(w, r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&body); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	done := make(chan runResult, 1)
	go func() {
		out, err := h.engine.Run(ctx, pipeline.Request{
			SubjectID:    body.SubjectID,
			CategoryKeys: body.Categories,
			Attributes:   body.Attributes,
		})
		done <- runResult{out: out, err: err}
	}()

	var res runResult
	select {
	case res = <-done:
	case <-ctx.Done():
		logging.Ctx(r.Context()).Warn().
			Str("subject_id", sanitizeLogValue(body.SubjectID)).
			Dur("timeout", h.requestTimeout).
			Msg("recommendation request abandoned")
		respondError(w, http.StatusGatewayTimeout, "TIMEOUT", "Recommendation assembly timed out", nil)
		return
	}

	if res.err != nil {
		h.respondRunError(w, res.err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   res.out,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Cached:      res.out.Cached,
			RequestID:   logging.RequestIDFromContext(r.Context()),
		},
	})
}

func (h *Handler) respondRunError(w http.ResponseWriter, err error) {
	var allFailed *pipeline.AllCategoriesFailedError
	switch {
	case errors.As(err, &allFailed):
		respondAPIError(w, http.StatusBadGateway, &models.APIError{
			Code:    "ALL_CATEGORIES_FAILED",
			Message: "No requested category could be fetched",
			Details: map[string]any{"category_errors": allFailed.CategoryErrors},
		})
	case errors.Is(err, pipeline.ErrNoCategories):
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "categories must not be empty", nil)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to assemble recommendations", err)
	}
}

// InvalidateRecommendations handles DELETE /api/v1/recommendations/{subjectID}.
//
// @Summary Drop memoized recommendations
// @Description Removes every memoized output for the subject so the next request runs the full pipeline.
// @Tags Recommendations
// @Produce json
// @Param subjectID path string true "Subject ID"
// @Success 200 {object} models.APIResponse{data=InvalidateResponse} "Number of outputs removed"
// @Failure 400 {object} models.APIResponse "Missing or oversized subject ID"
// @Router /recommendations/{subjectID} [delete]
func (h *Handler) InvalidateRecommendations(w http.ResponseWriter, r *http.Request) {
	subjectID := chi.URLParam(r, "subjectID")
	if subjectID == "" || len(subjectID) > 128 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "subject_id is required", nil)
		return
	}

	n := h.engine.InvalidateSubject(subjectID)
	logging.Ctx(r.Context()).Info().
		Str("subject_id", sanitizeLogValue(subjectID)).
		Int("invalidated", n).
		Msg("recommendations invalidated")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   InvalidateResponse{SubjectID: subjectID, Invalidated: n},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}
