// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package catalog

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/fitcurator/internal/logging"
	"github.com/tomtom215/fitcurator/internal/metrics"
	"github.com/tomtom215/fitcurator/internal/models"
)

const breakerName = "catalog-api"

// BreakerSettings tunes the circuit breaker. Zero values select defaults.
type BreakerSettings struct {
	MinRequests  uint32        // requests in Interval before the ratio is considered (default 10)
	FailureRatio float64       // trip threshold (default 0.6)
	Interval     time.Duration // closed-state counting window (default 1m)
	OpenTimeout  time.Duration // time spent open before probing (default 2m)
	MaxProbes    uint32        // concurrent requests allowed half-open (default 3)
}

func (s BreakerSettings) withDefaults() BreakerSettings {
	if s.MinRequests == 0 {
		s.MinRequests = 10
	}
	if s.FailureRatio <= 0 {
		s.FailureRatio = 0.6
	}
	if s.Interval <= 0 {
		s.Interval = time.Minute
	}
	if s.OpenTimeout <= 0 {
		s.OpenTimeout = 2 * time.Minute
	}
	if s.MaxProbes == 0 {
		s.MaxProbes = 3
	}
	return s
}

// CircuitBreakerClient stops calling the catalog while it is failing.
//
// Only upstream, timeout and transport failures count toward tripping. A
// local quota refusal or a malformed payload says nothing about upstream
// availability. While open, calls fail fast as KindTransport wrapping
// gobreaker.ErrOpenState and consume no quota.
type CircuitBreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[[]models.CandidateItem]
}

// NewCircuitBreakerClient wraps client.
func NewCircuitBreakerClient(client *Client, settings BreakerSettings) *CircuitBreakerClient {
	s := settings.withDefaults()
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]models.CandidateItem](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: s.MaxProbes,
		Interval:    s.Interval,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= s.FailureRatio {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_ratio", ratio).
					Msg("opening catalog circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
		IsSuccessful: countsAsSuccess,
	})

	return &CircuitBreakerClient{client: client, cb: cb}
}

// countsAsSuccess decides what the breaker records for an outcome.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	kind, _ := KindOf(err)
	return kind == KindRateLimitExceeded || kind == KindMalformed
}

// SearchItems calls Client.SearchItems through the breaker.
func (c *CircuitBreakerClient) SearchItems(ctx context.Context, term string, limit int) ([]models.CandidateItem, error) {
	items, err := c.cb.Execute(func() ([]models.CandidateItem, error) {
		return c.client.SearchItems(ctx, term, limit)
	})
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
		return items, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
		return nil, &FetchError{
			Kind:     KindTransport,
			Endpoint: SearchEndpoint,
			Message:  "circuit open",
			Err:      err,
		}
	}

	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
	return nil, err
}

// Status reports the wrapped client's quota usage.
func (c *CircuitBreakerClient) Status() RateStatus {
	return c.client.Status()
}

// State returns the breaker state name: closed, half-open or open.
func (c *CircuitBreakerClient) State() string {
	return c.cb.State().String()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
