// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/tomtom215/fitcurator/internal/metrics"
)

const (
	// DefaultCapacity is used when a non-positive capacity is configured.
	DefaultCapacity = 1000

	// DefaultTTL is used when a non-positive default TTL is configured.
	DefaultTTL = 10 * time.Minute

	// unsizedValueBytes is charged for values that cannot be measured.
	unsizedValueBytes = 64
)

// entry is one cached value. createdAt and ttl decide readability;
// lastAccessedAt mirrors the recency order kept by the LRU list.
type entry struct {
	value          any
	createdAt      time.Time
	ttl            time.Duration
	lastAccessedAt time.Time
	accessCount    int64
	size           int64
}

func (e *entry) expired(now time.Time) bool {
	return now.Sub(e.createdAt) > e.ttl
}

// Stats is a point-in-time snapshot of cache counters. HitRate and MissRate
// are fractions in [0, 1] over all Get calls since construction.
type Stats struct {
	Entries          int       `json:"entries"`
	Capacity         int       `json:"capacity"`
	ApproximateBytes int64     `json:"approximate_bytes"`
	Hits             int64     `json:"hits"`
	Misses           int64     `json:"misses"`
	Evictions        int64     `json:"evictions"`
	Expirations      int64     `json:"expirations"`
	HitRate          float64   `json:"hit_rate"`
	MissRate         float64   `json:"miss_rate"`
	LastCleanup      time.Time `json:"last_cleanup,omitempty"`
}

// BoundedCache is a size-bounded key/value store with per-entry TTL and
// least-recently-used eviction. All operations take a single mutex, so one
// instance is safely shared by every component of the process.
//
// Values are stored as given. Callers that cache slices or maps must hand
// over a copy and copy again on read; the cache never clones values.
type BoundedCache struct {
	mu         sync.Mutex
	lru        *simplelru.LRU[string, *entry]
	capacity   int
	defaultTTL time.Duration
	bytes      int64

	hits        int64
	misses      int64
	evictions   int64
	expirations int64
	lastCleanup time.Time

	now func() time.Time
}

// NewBoundedCache creates a cache holding at most capacity entries. Entries
// set without an explicit TTL live for defaultTTL.
func NewBoundedCache(capacity int, defaultTTL time.Duration) *BoundedCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	c := &BoundedCache{
		capacity:   capacity,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
	// NewLRU only fails for a non-positive size, excluded above.
	c.lru, _ = simplelru.NewLRU[string, *entry](capacity, c.onRemove)
	return c
}

// onRemove runs under c.mu for every entry leaving the list.
func (c *BoundedCache) onRemove(_ string, e *entry) {
	c.bytes -= e.size
}

// Set inserts or replaces key. A ttl <= 0 selects the default TTL. When the
// cache is full, the entry with the oldest last access is evicted first.
func (c *BoundedCache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	size := approximateSize(key, value)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if old, ok := c.lru.Peek(key); ok {
		// Add on an existing key replaces in place without the callback.
		c.bytes -= old.size
	}

	evicted := c.lru.Add(key, &entry{
		value:          value,
		createdAt:      now,
		ttl:            ttl,
		lastAccessedAt: now,
		size:           size,
	})
	c.bytes += size

	if evicted {
		c.evictions++
		metrics.CacheEvictions.WithLabelValues("capacity").Inc()
	}
}

// Get returns the value for key. An expired entry is removed and reported
// as a miss.
func (c *BoundedCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	e, ok := c.lru.Peek(key)
	if !ok {
		c.recordMiss()
		return nil, false
	}
	if e.expired(now) {
		c.lru.Remove(key)
		c.expirations++
		metrics.CacheEvictions.WithLabelValues("expired").Inc()
		c.recordMiss()
		return nil, false
	}

	// Get moves the element to the front of the recency list.
	c.lru.Get(key)
	e.accessCount++
	e.lastAccessedAt = now
	c.hits++
	metrics.CacheHits.Inc()
	return e.value, true
}

// Has reports whether key holds a live entry. It changes neither the
// hit/miss counters nor the recency order.
func (c *BoundedCache) Has(key string) bool {
	_, ok := c.Peek(key)
	return ok
}

// Peek returns the value of a live entry without counting a hit or miss and
// without refreshing its recency.
func (c *BoundedCache) Peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Peek(key)
	if !ok || e.expired(c.now()) {
		return nil, false
	}
	return e.value, true
}

// Delete removes key and reports whether it was present.
func (c *BoundedCache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Remove(key)
}

// InvalidateByPrefix removes every key starting with prefix and returns
// how many were removed. An empty prefix matches nothing.
func (c *BoundedCache) InvalidateByPrefix(prefix string) int {
	if prefix == "" {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) && c.lru.Remove(key) {
			removed++
		}
	}
	return removed
}

// CleanupExpired drops every expired entry and returns the count. Expired
// entries are otherwise only removed when read.
func (c *BoundedCache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for _, key := range c.lru.Keys() {
		if e, ok := c.lru.Peek(key); ok && e.expired(now) {
			c.lru.Remove(key)
			removed++
		}
	}
	c.expirations += int64(removed)
	c.lastCleanup = now
	if removed > 0 {
		metrics.CacheEvictions.WithLabelValues("expired").Add(float64(removed))
	}
	return removed
}

// Clear empties the cache. Counters are kept.
func (c *BoundedCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
	c.bytes = 0
}

// Len returns the number of stored entries, expired or not.
func (c *BoundedCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns a snapshot of the cache counters.
func (c *BoundedCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Entries:          c.lru.Len(),
		Capacity:         c.capacity,
		ApproximateBytes: c.bytes,
		Hits:             c.hits,
		Misses:           c.misses,
		Evictions:        c.evictions,
		Expirations:      c.expirations,
		LastCleanup:      c.lastCleanup,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
		s.MissRate = float64(c.misses) / float64(total)
	}
	return s
}

// recordMiss must be called with c.mu held.
func (c *BoundedCache) recordMiss() {
	c.misses++
	metrics.CacheMisses.Inc()
}

// approximateSize estimates the memory charged to one entry. Strings and
// byte slices are exact; anything else is measured by its JSON encoding.
func approximateSize(key string, value any) int64 {
	n := int64(len(key))
	switch v := value.(type) {
	case nil:
		return n
	case string:
		return n + int64(len(v))
	case []byte:
		return n + int64(len(v))
	}
	data, err := json.Marshal(value)
	if err != nil {
		return n + unsizedValueBytes
	}
	return n + int64(len(data))
}
