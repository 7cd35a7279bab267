// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/fitcurator/internal/cache"
	"github.com/tomtom215/fitcurator/internal/metrics"
)

func TestCacheJanitorSweepsExpiredEntries(t *testing.T) {
	c := cache.NewBoundedCache(10, time.Hour)
	c.Set("catalog:chest:10", "short", 20*time.Millisecond)
	c.Set("catalog:back:10", "long", time.Hour)

	j := NewCacheJanitorService(c, 10*time.Millisecond)
	j.sweeps = make(chan int, 16)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Serve(ctx) }()

	deadline := time.After(2 * time.Second)
	total := 0
	for total < 1 {
		select {
		case n := <-j.sweeps:
			total += n
		case <-deadline:
			t.Fatal("expired entry was never swept")
		}
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v", err)
	}
	if c.Len() != 1 || !c.Has("catalog:back:10") {
		t.Errorf("cache len = %d, live entry should remain", c.Len())
	}
	if got := testutil.ToFloat64(metrics.CacheEntries); got != 1 {
		t.Errorf("entries gauge = %v, want 1", got)
	}
}

func TestCacheJanitorDefaults(t *testing.T) {
	t.Parallel()

	j := NewCacheJanitorService(cache.NewBoundedCache(1, time.Minute), 0)
	if j.interval != 5*time.Minute {
		t.Errorf("interval = %v", j.interval)
	}
	if j.String() != "cache-janitor" {
		t.Errorf("String() = %q", j.String())
	}
}
