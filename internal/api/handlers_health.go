// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/fitcurator/internal/models"
	"github.com/tomtom215/fitcurator/internal/pipeline"
)

// HealthResponse is the body of GET /api/v1/health.
type HealthResponse struct {
	Status        string          `json:"status"` // "healthy" or "degraded"
	UptimeSeconds float64         `json:"uptime_seconds"`
	Pipeline      pipeline.Health `json:"pipeline"`
}

// Health reports cache statistics, catalog quota usage and provider status.
// The service is degraded while the catalog breaker is open, the daily
// quota is spent, or no fallback provider is configured.
//
// @Summary Get service health
// @Description Returns cache statistics, catalog quota usage, circuit breaker state and fallback provider configuration
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=HealthResponse} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	ph := h.engine.HealthStatus()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: HealthResponse{
			Status:        healthState(ph),
			UptimeSeconds: time.Since(h.startTime).Seconds(),
			Pipeline:      ph,
		},
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

func healthState(ph pipeline.Health) string {
	if ph.Breaker == "open" {
		return "degraded"
	}
	if rl := ph.RateLimiter; rl.DailyLimit > 0 && rl.RequestsToday >= rl.DailyLimit {
		return "degraded"
	}
	for _, configured := range ph.Providers {
		if configured {
			return "healthy"
		}
	}
	return "degraded"
}

// HealthLive is the liveness probe. It only reports that the process serves HTTP.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Process is serving HTTP"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "alive"},
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}
