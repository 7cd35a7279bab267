// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package services

import (
	"context"
	"time"

	"github.com/tomtom215/fitcurator/internal/cache"
	"github.com/tomtom215/fitcurator/internal/logging"
	"github.com/tomtom215/fitcurator/internal/metrics"
)

// ExpiringCache is swept by the janitor. Satisfied by *cache.BoundedCache.
type ExpiringCache interface {
	CleanupExpired() int
	Stats() cache.Stats
}

// CacheJanitorService removes expired cache entries on a fixed interval.
// Reads already ignore expired entries; the sweep reclaims memory held by
// entries nobody asks for again.
type CacheJanitorService struct {
	cache    ExpiringCache
	interval time.Duration
	sweeps   chan int // receives the removed count after each sweep when non-nil
}

// NewCacheJanitorService creates a janitor. A non-positive interval means 5m.
func NewCacheJanitorService(c ExpiringCache, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CacheJanitorService{cache: c, interval: interval}
}

// Serve implements suture.Service.
func (j *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *CacheJanitorService) sweep() {
	removed := j.cache.CleanupExpired()
	stats := j.cache.Stats()
	metrics.UpdateCacheGauges(stats.Entries, stats.ApproximateBytes)
	if removed > 0 {
		logging.Debug().Int("removed", removed).Int("remaining", stats.Entries).Msg("cache sweep")
	}
	if j.sweeps != nil {
		select {
		case j.sweeps <- removed:
		default:
		}
	}
}

func (j *CacheJanitorService) String() string { return "cache-janitor" }
