// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package catalog

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestWindow(perMinute, daily int) (*RateWindow, *stepClock) {
	clock := &stepClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	w := NewRateWindow(perMinute, daily)
	w.now = clock.Now
	return w, clock
}

func TestRateWindowMinuteBoundary(t *testing.T) {
	t.Parallel()

	w, clock := newTestWindow(3, 100)
	for i := 0; i < 3; i++ {
		if !w.Acquire() {
			t.Fatalf("call %d refused within limit", i+1)
		}
		clock.Advance(10 * time.Second)
	}
	if w.Acquire() {
		t.Fatal("4th call within 60s should be refused")
	}

	// The first call was at t=0; at t=60s it leaves the window.
	clock.Advance(30 * time.Second)
	if !w.Acquire() {
		t.Fatal("slot should free once the oldest call is 60s old")
	}
	if w.Acquire() {
		t.Fatal("only one slot should have freed")
	}
}

func TestRateWindowRefusalDoesNotConsume(t *testing.T) {
	t.Parallel()

	w, _ := newTestWindow(1, 100)
	w.Acquire()
	w.Acquire()
	w.Acquire()

	st := w.Status()
	if st.RequestsThisMinute != 1 || st.RequestsToday != 1 {
		t.Errorf("status = %+v, refused calls were counted", st)
	}
}

func TestRateWindowDailyLimitAndReset(t *testing.T) {
	t.Parallel()

	w, clock := newTestWindow(10, 2)
	w.Acquire()
	clock.Advance(2 * time.Minute)
	w.Acquire()
	clock.Advance(2 * time.Minute)

	if w.Acquire() {
		t.Fatal("daily limit exceeded")
	}

	clock.Advance(24 * time.Hour)
	if !w.Acquire() {
		t.Fatal("daily counter should reset after 24h")
	}
	if got := w.Status().RequestsToday; got != 1 {
		t.Errorf("RequestsToday = %d, want 1", got)
	}
}

func TestRateWindowStatus(t *testing.T) {
	t.Parallel()

	w, clock := newTestWindow(5, 50)
	w.Acquire()
	w.Acquire()
	clock.Advance(61 * time.Second)

	st := w.Status()
	want := RateStatus{RequestsThisMinute: 0, RequestsToday: 2, MinuteLimit: 5, DailyLimit: 50}
	if st != want {
		t.Errorf("Status = %+v, want %+v", st, want)
	}
}

func TestRateWindowConcurrentLastSlot(t *testing.T) {
	t.Parallel()

	w, _ := newTestWindow(10, 1000)
	var granted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if w.Acquire() {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	if granted.Load() != 10 {
		t.Errorf("granted = %d, want exactly 10", granted.Load())
	}
}
