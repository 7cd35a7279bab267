// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package media

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/fitcurator/internal/cache"
	"github.com/tomtom215/fitcurator/internal/logging"
	"github.com/tomtom215/fitcurator/internal/metrics"
	"github.com/tomtom215/fitcurator/internal/models"
)

// KeyNamespace prefixes every resolver cache key.
const KeyNamespace = "fallback"

// DefaultTTL is how long a winning provider result stays cached.
const DefaultTTL = time.Hour

// Resolution is the outcome of a fallback lookup.
type Resolution struct {
	Items        []models.FallbackMedia
	ProviderUsed string
	Success      bool
}

// Resolver tries providers in priority order and caches the first non-empty result.
type Resolver struct {
	providers []Provider
	cache     *cache.BoundedCache
	ttl       time.Duration
	qualifier string
	group     singleflight.Group
	logger    zerolog.Logger
}

// NewResolver creates a resolver over providers in the given order.
// c may be nil, in which case nothing is cached.
func NewResolver(c *cache.BoundedCache, ttl time.Duration, providers ...Provider) *Resolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Resolver{
		providers: providers,
		cache:     c,
		ttl:       ttl,
		qualifier: DefaultQualifier,
		logger:    logging.WithComponent("fallback-resolver"),
	}
}

// WithQualifier sets the term appended to every query.
func (r *Resolver) WithQualifier(q string) *Resolver {
	if q != "" {
		r.qualifier = q
	}
	return r
}

// Providers reports each provider's name and whether it is configured.
func (r *Resolver) Providers() map[string]bool {
	out := make(map[string]bool, len(r.providers))
	for _, p := range r.providers {
		out[p.Name()] = p.IsConfigured()
	}
	return out
}

// Resolve returns fallback media for terms. It never fails; a lookup where
// no provider produced anything returns Success=false and no items.
func (r *Resolver) Resolve(ctx context.Context, terms QueryTerms, limit int) Resolution {
	limit = clampLimit(limit)
	query := BuildQuery(terms.Name, terms.Regions, r.qualifier)
	key := cache.GenerateKey(KeyNamespace, struct {
		Query string `json:"q"`
		Limit int    `json:"l"`
	}{query, limit})

	if res, ok := r.cached(key); ok {
		metrics.RecordFallbackLookup(res.ProviderUsed, "cache_hit")
		return res
	}

	// Concurrent repairs of items with the same query share one cascade. The
	// miss is already counted, so the re-check inside the flight peeks.
	v, _, _ := r.group.Do(key, func() (any, error) {
		if res, ok := r.peek(key); ok {
			return res, nil
		}
		return r.cascade(ctx, query, limit, key), nil
	})
	res := v.(Resolution)
	res.Items = slices.Clone(res.Items)
	return res
}

func (r *Resolver) cached(key string) (Resolution, bool) {
	return r.lookup(key, false)
}

func (r *Resolver) peek(key string) (Resolution, bool) {
	return r.lookup(key, true)
}

func (r *Resolver) lookup(key string, peek bool) (Resolution, bool) {
	if r.cache == nil {
		return Resolution{}, false
	}
	var (
		v  any
		ok bool
	)
	if peek {
		v, ok = r.cache.Peek(key)
	} else {
		v, ok = r.cache.Get(key)
	}
	if !ok {
		return Resolution{}, false
	}
	res, ok := v.(Resolution)
	if !ok {
		return Resolution{}, false
	}
	res.Items = slices.Clone(res.Items)
	return res, true
}

func (r *Resolver) cascade(ctx context.Context, query string, limit int, key string) Resolution {
	log := logging.CtxWith(ctx, r.logger).With().Str("query", query).Logger()

	for _, p := range r.providers {
		name := p.Name()
		if !p.IsConfigured() {
			metrics.RecordFallbackLookup(name, "skipped")
			continue
		}

		items, err := p.Search(ctx, query, limit)
		if err != nil {
			metrics.RecordFallbackLookup(name, "error")
			log.Debug().Err(err).Str("provider", name).Msg("fallback provider failed")
			continue
		}
		if len(items) == 0 {
			metrics.RecordFallbackLookup(name, "empty")
			log.Debug().Str("provider", name).Msg("fallback provider returned no results")
			continue
		}
		if len(items) > limit {
			items = items[:limit]
		}

		res := Resolution{Items: items, ProviderUsed: name, Success: true}
		if r.cache != nil {
			stored := res
			stored.Items = slices.Clone(items)
			r.cache.Set(key, stored, r.ttl)
		}
		metrics.RecordFallbackLookup(name, "hit")
		log.Debug().Str("provider", name).Int("results", len(items)).Msg("fallback resolved")
		return res
	}

	metrics.RecordFallbackLookup("none", "exhausted")
	log.Debug().Msg("no fallback provider produced results")
	return Resolution{Items: []models.FallbackMedia{}, Success: false}
}
