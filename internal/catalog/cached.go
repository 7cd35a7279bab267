// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package catalog

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/fitcurator/internal/cache"
	"github.com/tomtom215/fitcurator/internal/models"
)

// KeyPrefix namespaces catalog entries in the shared cache.
const KeyPrefix = "catalog:"

// CachedCatalog answers searches from the shared cache before calling the
// wrapped Fetcher. Only successful results are stored.
type CachedCatalog struct {
	next  Fetcher
	cache *cache.BoundedCache
	ttl   time.Duration
}

// NewCachedCatalog wraps next with c, storing results for ttl.
func NewCachedCatalog(next Fetcher, c *cache.BoundedCache, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{next: next, cache: c, ttl: ttl}
}

// SearchItems implements Fetcher.
func (c *CachedCatalog) SearchItems(ctx context.Context, term string, limit int) ([]models.CandidateItem, error) {
	key := searchKey(term, limit)
	if v, ok := c.cache.Get(key); ok {
		if items, ok := v.([]models.CandidateItem); ok {
			return models.CloneItems(items), nil
		}
	}

	items, err := c.next.SearchItems(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, models.CloneItems(items), c.ttl)
	return items, nil
}

// Status implements Fetcher.
func (c *CachedCatalog) Status() RateStatus {
	return c.next.Status()
}

func searchKey(term string, limit int) string {
	return KeyPrefix + strings.ToLower(strings.TrimSpace(term)) + ":" + strconv.Itoa(limit)
}

// State reports the wrapped fetcher's circuit breaker state, or "" when it has none.
func (c *CachedCatalog) State() string {
	if s, ok := c.next.(interface{ State() string }); ok {
		return s.State()
	}
	return ""
}
