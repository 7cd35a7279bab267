// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package catalog

import (
	"sync"
	"time"
)

const (
	minuteWindow = time.Minute
	dailyWindow  = 24 * time.Hour
)

// RateStatus reports quota usage for health checks.
type RateStatus struct {
	RequestsThisMinute int `json:"requests_this_minute"`
	RequestsToday      int `json:"requests_today"`
	MinuteLimit        int `json:"minute_limit"`
	DailyLimit         int `json:"daily_limit"`
}

// RateWindow tracks upstream quota as a sliding one-minute window of call
// timestamps plus a counter that resets 24h after it started. A slot is
// consumed before the call is made and is never returned, matching how the
// upstream accounts for failed calls.
type RateWindow struct {
	mu         sync.Mutex
	perMinute  int
	daily      int
	minute     []time.Time
	dailyCount int
	dailyStart time.Time
	now        func() time.Time
}

// NewRateWindow creates a window allowing perMinute calls in any trailing
// 60s and daily calls per 24h period.
func NewRateWindow(perMinute, daily int) *RateWindow {
	return &RateWindow{
		perMinute: perMinute,
		daily:     daily,
		minute:    make([]time.Time, 0, perMinute),
		now:       time.Now,
	}
}

// Acquire consumes one slot if both limits allow it. Check and increment
// happen under one lock, so concurrent callers racing for the last slot
// cannot both win.
func (w *RateWindow) Acquire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	w.prune(now)

	if len(w.minute) >= w.perMinute || w.dailyCount >= w.daily {
		return false
	}
	w.minute = append(w.minute, now)
	w.dailyCount++
	return true
}

// Status returns the current usage.
func (w *RateWindow) Status() RateStatus {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.prune(w.now())
	return RateStatus{
		RequestsThisMinute: len(w.minute),
		RequestsToday:      w.dailyCount,
		MinuteLimit:        w.perMinute,
		DailyLimit:         w.daily,
	}
}

// prune must be called with w.mu held.
func (w *RateWindow) prune(now time.Time) {
	keep := 0
	for keep < len(w.minute) && now.Sub(w.minute[keep]) >= minuteWindow {
		keep++
	}
	if keep > 0 {
		w.minute = append(w.minute[:0], w.minute[keep:]...)
	}

	if w.dailyStart.IsZero() || now.Sub(w.dailyStart) >= dailyWindow {
		w.dailyStart = now
		w.dailyCount = 0
	}
}
