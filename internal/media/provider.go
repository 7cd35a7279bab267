// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/fitcurator/internal/config"
	"github.com/tomtom215/fitcurator/internal/logging"
	"github.com/tomtom215/fitcurator/internal/models"
)

// DefaultTimeout bounds a single provider query.
const DefaultTimeout = 5 * time.Second

const maxProviderBodySize = 4 << 20

var (
	// ErrNotConfigured is returned when a provider without credentials is queried.
	ErrNotConfigured = errors.New("provider not configured")
	// ErrRateLimited is returned when the provider's local limiter refuses a request.
	ErrRateLimited = errors.New("provider rate limit exceeded")
	// ErrUnexpectedStatus wraps non-200 provider responses.
	ErrUnexpectedStatus = errors.New("provider returned unexpected status")
)

// Provider is a third-party media search service.
type Provider interface {
	// Search returns at most limit media results for query, best match first.
	Search(ctx context.Context, query string, limit int) ([]models.FallbackMedia, error)

	// Name returns the provider name used in logs, metrics and Resolution.ProviderUsed.
	Name() string

	// IsConfigured reports whether the provider has the credentials it needs.
	IsConfigured() bool
}

// ProviderOptions carries the settings shared by every provider.
type ProviderOptions struct {
	Timeout           time.Duration
	RequestsPerMinute int // 0 disables local limiting
	HTTPClient        *http.Client
}

// httpProvider holds the request plumbing shared by the concrete providers.
type httpProvider struct {
	name    string
	baseURL string
	apiKey  string
	timeout time.Duration
	client  *http.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
}

func newHTTPProvider(name string, cfg config.ProviderConfig, defaultBase string, opts ProviderOptions) httpProvider {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultBase
	}

	p := httpProvider{
		name:    name,
		baseURL: strings.TrimRight(base, "/"),
		apiKey:  cfg.APIKey,
		timeout: timeout,
		client:  client,
		logger:  logging.WithComponent("media").With().Str("provider", name).Logger(),
	}
	if opts.RequestsPerMinute > 0 {
		p.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), opts.RequestsPerMinute)
	}
	return p
}

func (p *httpProvider) Name() string { return p.name }

func (p *httpProvider) IsConfigured() bool { return p.apiKey != "" }

// getJSON issues a GET to path and decodes a 200 response into out.
// The request is detached from caller cancellation and bounded by the
// provider timeout.
func (p *httpProvider) getJSON(ctx context.Context, path string, params url.Values, header http.Header, out any) error {
	if !p.IsConfigured() {
		return fmt.Errorf("%s: %w", p.name, ErrNotConfigured)
	}
	if p.limiter != nil && !p.limiter.Allow() {
		return fmt.Errorf("%s: %w", p.name, ErrRateLimited)
	}

	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	reqURL := p.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", p.name, err)
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", p.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		return fmt.Errorf("%s returned status %d: %w", p.name, resp.StatusCode, ErrUnexpectedStatus)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProviderBodySize)).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", p.name, err)
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 1
	}
	return limit
}

// NewProviders builds the providers named in cfg.Priority, in that order.
// Providers without credentials are still returned; the resolver skips them.
func NewProviders(cfg *config.FallbackConfig) ([]Provider, error) {
	opts := ProviderOptions{Timeout: cfg.Timeout, RequestsPerMinute: cfg.RequestsPerMinute}

	providers := make([]Provider, 0, len(cfg.Priority))
	for _, name := range cfg.Priority {
		pc, ok := cfg.Provider(name)
		if !ok {
			return nil, fmt.Errorf("unknown fallback provider %q", name)
		}
		switch name {
		case config.ProviderGiphy:
			providers = append(providers, NewGiphyProvider(pc, opts))
		case config.ProviderPixabay:
			providers = append(providers, NewPixabayProvider(pc, opts))
		case config.ProviderUnsplash:
			providers = append(providers, NewUnsplashProvider(pc, opts))
		}
	}
	return providers, nil
}
