// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package api

import (
	"context"
	"time"

	"github.com/tomtom215/fitcurator/internal/pipeline"
)

// DefaultRequestTimeout bounds how long a client waits for one run.
const DefaultRequestTimeout = 30 * time.Second

// Recommender is the pipeline surface the handlers depend on.
type Recommender interface {
	Run(ctx context.Context, req pipeline.Request) (*pipeline.Output, error)
	InvalidateSubject(subjectID string) int
	HealthStatus() pipeline.Health
}

// Handler serves the HTTP endpoints.
type Handler struct {
	engine         Recommender
	requestTimeout time.Duration
	startTime      time.Time
}

// NewHandler creates a handler. A non-positive requestTimeout uses DefaultRequestTimeout.
func NewHandler(engine Recommender, requestTimeout time.Duration) *Handler {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	return &Handler{
		engine:         engine,
		requestTimeout: requestTimeout,
		startTime:      time.Now(),
	}
}
