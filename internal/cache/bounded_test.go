// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is advanced manually so TTL tests never sleep.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(capacity int, ttl time.Duration) (*BoundedCache, *fakeClock) {
	clock := newFakeClock()
	c := NewBoundedCache(capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestBoundedCacheSetGet(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(10, time.Minute)
	c.Set("a", 1, 0)

	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Fatalf("Get(a) = %v, %v; want 1, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should miss")
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 1/1", s.Hits, s.Misses)
	}
	if s.HitRate != 0.5 || s.MissRate != 0.5 {
		t.Errorf("rates = %v/%v, want 0.5/0.5", s.HitRate, s.MissRate)
	}
}

func TestBoundedCacheTTL(t *testing.T) {
	t.Parallel()

	for _, ttl := range []time.Duration{time.Millisecond, time.Second, time.Hour} {
		t.Run(ttl.String(), func(t *testing.T) {
			t.Parallel()

			c, clock := newTestCache(10, time.Minute)
			c.Set("k", "v", ttl)

			if v, ok := c.Get("k"); !ok || v != "v" {
				t.Fatalf("immediate Get = %v, %v", v, ok)
			}

			clock.Advance(ttl)
			if !c.Has("k") {
				t.Error("entry should still be readable exactly at its ttl")
			}

			clock.Advance(time.Nanosecond)
			if c.Has("k") {
				t.Error("Has should be false after ttl")
			}
			if _, ok := c.Get("k"); ok {
				t.Error("Get should miss after ttl")
			}
			if c.Len() != 0 {
				t.Errorf("expired entry not removed on read, len = %d", c.Len())
			}
			if c.Stats().Expirations != 1 {
				t.Errorf("expirations = %d, want 1", c.Stats().Expirations)
			}
		})
	}
}

func TestBoundedCacheDefaultTTL(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(10, 30*time.Second)
	c.Set("k", "v", -1)

	clock.Advance(31 * time.Second)
	if c.Has("k") {
		t.Error("negative ttl should fall back to the 30s default")
	}
}

func TestBoundedCacheHasDoesNotTouchCounters(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(10, time.Minute)
	c.Set("k", "v", 0)
	c.Has("k")
	c.Has("nope")

	s := c.Stats()
	if s.Hits != 0 || s.Misses != 0 {
		t.Errorf("Has changed counters: hits=%d misses=%d", s.Hits, s.Misses)
	}
}

func TestBoundedCachePeek(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(10, time.Minute)
	c.Set("k", "v", 0)

	if v, ok := c.Peek("k"); !ok || v != "v" {
		t.Errorf("Peek(k) = %v, %v", v, ok)
	}
	if _, ok := c.Peek("nope"); ok {
		t.Error("Peek found a missing key")
	}
	clock.Advance(2 * time.Minute)
	if _, ok := c.Peek("k"); ok {
		t.Error("Peek returned an expired entry")
	}

	s := c.Stats()
	if s.Hits != 0 || s.Misses != 0 {
		t.Errorf("Peek changed counters: hits=%d misses=%d", s.Hits, s.Misses)
	}
}

func TestBoundedCacheEvictsLeastRecentlyAccessed(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(3, time.Hour)
	c.Set("a", 1, 0)
	clock.Advance(time.Second)
	c.Set("b", 2, 0)
	clock.Advance(time.Second)
	c.Set("c", 3, 0)
	clock.Advance(time.Second)

	// a was inserted first but read most recently.
	c.Get("a")
	clock.Advance(time.Second)
	c.Get("c")
	clock.Advance(time.Second)

	c.Set("d", 4, 0)

	if c.Has("b") {
		t.Error("b had the oldest access and should have been evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if !c.Has(k) {
			t.Errorf("%s should survive eviction", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("evictions = %d, want exactly 1", got)
	}
}

func TestBoundedCacheHasDoesNotRefreshRecency(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(2, time.Hour)
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)
	c.Has("a")
	c.Set("c", 3, 0)

	if c.Has("a") {
		t.Error("Has must not protect a from eviction")
	}
}

func TestBoundedCacheReplaceKeepsSize(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(2, time.Hour)
	c.Set("a", "x", 0)
	c.Set("a", "yyyy", 0)

	if c.Len() != 1 {
		t.Errorf("len = %d, want 1", c.Len())
	}
	if got, want := c.Stats().ApproximateBytes, int64(len("a")+len("yyyy")); got != want {
		t.Errorf("bytes = %d, want %d", got, want)
	}
	if v, _ := c.Get("a"); v != "yyyy" {
		t.Errorf("value = %v, want yyyy", v)
	}
}

func TestBoundedCacheDeleteAndPrefix(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(10, time.Hour)
	c.Set("pipeline:u1:aaa", 1, 0)
	c.Set("pipeline:u1:bbb", 2, 0)
	c.Set("pipeline:u2:aaa", 3, 0)
	c.Set("catalog:chest:10", 4, 0)

	if !c.Delete("catalog:chest:10") {
		t.Error("Delete of present key should return true")
	}
	if c.Delete("catalog:chest:10") {
		t.Error("second Delete should return false")
	}

	if n := c.InvalidateByPrefix("pipeline:u1:"); n != 2 {
		t.Errorf("InvalidateByPrefix removed %d, want 2", n)
	}
	if !c.Has("pipeline:u2:aaa") {
		t.Error("other subject's entry removed")
	}
	if n := c.InvalidateByPrefix(""); n != 0 {
		t.Errorf("empty prefix removed %d entries", n)
	}
}

func TestBoundedCacheCleanupExpired(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(10, time.Hour)
	c.Set("short", 1, time.Second)
	c.Set("long", 2, time.Hour)

	clock.Advance(2 * time.Second)
	if n := c.CleanupExpired(); n != 1 {
		t.Errorf("CleanupExpired = %d, want 1", n)
	}
	if c.Len() != 1 || !c.Has("long") {
		t.Error("long-lived entry should remain")
	}
	if c.Stats().LastCleanup.IsZero() {
		t.Error("LastCleanup not recorded")
	}
}

func TestBoundedCacheClear(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(10, time.Hour)
	c.Set("a", []string{"x", "y"}, 0)
	c.Clear()

	s := c.Stats()
	if s.Entries != 0 || s.ApproximateBytes != 0 {
		t.Errorf("after Clear entries=%d bytes=%d", s.Entries, s.ApproximateBytes)
	}
}

func TestNewBoundedCacheDefaults(t *testing.T) {
	t.Parallel()

	c := NewBoundedCache(0, 0)
	if c.Stats().Capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", c.Stats().Capacity, DefaultCapacity)
	}
	if c.defaultTTL != DefaultTTL {
		t.Errorf("ttl = %v, want %v", c.defaultTTL, DefaultTTL)
	}
}

func TestBoundedCacheConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := NewBoundedCache(50, time.Minute)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", (g*200+i)%120)
				c.Set(key, i, 0)
				c.Get(key)
				c.Has(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 50 {
		t.Errorf("len = %d exceeds capacity 50", c.Len())
	}
}
