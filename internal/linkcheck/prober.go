// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

// Package linkcheck probes media URLs for reachability.
package linkcheck

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/fitcurator/internal/logging"
	"github.com/tomtom215/fitcurator/internal/metrics"
)

// DefaultTimeout bounds one probe, redirects included.
const DefaultTimeout = 3 * time.Second

// Checker reports whether a URL currently resolves to a usable resource.
type Checker interface {
	Probe(ctx context.Context, rawURL string) bool
}

// Prober issues HEAD requests with a short fixed deadline.
type Prober struct {
	client  *http.Client
	timeout time.Duration
	logger  zerolog.Logger
}

// NewProber creates a prober. A non-positive timeout uses DefaultTimeout.
func NewProber(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Prober{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
		logger:  logging.WithComponent("linkcheck"),
	}
}

// Probe returns true when a HEAD request to rawURL, after redirects, ends in
// a 2xx status. Empty or non-http(s) URLs, transport errors and timeouts all
// count as unreachable. No body is read.
func (p *Prober) Probe(ctx context.Context, rawURL string) bool {
	ok := p.probe(ctx, rawURL)
	metrics.RecordLinkProbe(ok)
	return ok
}

func (p *Prober) probe(ctx context.Context, rawURL string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false
	}

	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodHead, u.String(), http.NoBody)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		log := logging.CtxWith(ctx, p.logger)
		log.Debug().Err(err).Str("url", rawURL).Msg("link probe failed")
		return false
	}
	_ = resp.Body.Close()

	// Redirects were already followed; a final 3xx leads nowhere.
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
