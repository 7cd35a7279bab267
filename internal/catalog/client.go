// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/fitcurator/internal/config"
	"github.com/tomtom215/fitcurator/internal/logging"
	"github.com/tomtom215/fitcurator/internal/metrics"
	"github.com/tomtom215/fitcurator/internal/models"
	"github.com/tomtom215/fitcurator/internal/validation"
)

const (
	// DefaultTimeout bounds one catalog request.
	DefaultTimeout = 10 * time.Second

	// SearchEndpoint is the catalog's keyword search.
	SearchEndpoint = "/items"

	maxErrorBodySize    = 64 * 1024
	maxResponseBodySize = 8 << 20
	maxErrorMessageLen  = 256
)

// Fetcher is what the pipeline needs from the catalog.
type Fetcher interface {
	SearchItems(ctx context.Context, term string, limit int) ([]models.CandidateItem, error)
	Status() RateStatus
}

// Client calls the upstream exercise catalog under a per-minute and daily
// quota. It performs no retries.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	client  *http.Client
	window  *RateWindow
	logger  zerolog.Logger
}

// NewClient creates a catalog client from configuration.
func NewClient(cfg *config.CatalogConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
		window:  NewRateWindow(cfg.PerMinuteLimit, cfg.DailyLimit),
		logger:  logging.WithComponent("catalog"),
	}
}

// Status reports quota usage.
func (c *Client) Status() RateStatus {
	return c.window.Status()
}

// envelope is the wrapper around every catalog response.
type envelope struct {
	Success *bool           `json:"success" validate:"required"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Request performs GET endpoint?params and returns the raw "data" member of
// a successful response.
//
// The quota is checked first; a refused call returns KindRateLimitExceeded
// without touching the network. The request runs under its own deadline,
// detached from ctx cancellation, so abandoning the caller does not cut an
// in-flight request short.
func (c *Client) Request(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if !c.window.Acquire() {
		st := c.window.Status()
		metrics.RecordCatalogRequest(endpoint, string(KindRateLimitExceeded), 0)
		return nil, &FetchError{
			Kind:     KindRateLimitExceeded,
			Endpoint: endpoint,
			Message: fmt.Sprintf("%d/%d this minute, %d/%d today",
				st.RequestsThisMinute, st.MinuteLimit, st.RequestsToday, st.DailyLimit),
		}
	}
	st := c.window.Status()
	metrics.UpdateCatalogQuota(st.RequestsThisMinute, st.RequestsToday)

	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	start := time.Now()
	data, err := c.do(reqCtx, endpoint, params)
	elapsed := time.Since(start)

	outcome := "success"
	if kind, ok := KindOf(err); ok {
		outcome = string(kind)
	}
	metrics.RecordCatalogRequest(endpoint, outcome, elapsed)

	log := logging.CtxWith(ctx, c.logger)
	if err != nil {
		log.Debug().Err(err).Str("endpoint", endpoint).Dur("elapsed", elapsed).Msg("catalog request failed")
		return nil, err
	}
	log.Debug().Str("endpoint", endpoint).Dur("elapsed", elapsed).Int("bytes", len(data)).Msg("catalog request succeeded")
	return data, nil
}

func (c *Client) do(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Kind:       KindUpstream,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    truncate(string(readBodyForError(resp.Body)), maxErrorMessageLen),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, classifyTransportError(endpoint, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &FetchError{Kind: KindMalformed, Endpoint: endpoint, Message: "invalid JSON", Err: err}
	}
	if verr := validation.ValidateStruct(&env); verr != nil {
		return nil, &FetchError{Kind: KindMalformed, Endpoint: endpoint, Message: verr.Error(), Err: verr}
	}
	if !*env.Success {
		msg := env.Message
		if msg == "" {
			msg = "success=false"
		}
		return nil, &FetchError{Kind: KindUpstream, Endpoint: endpoint, Message: msg}
	}
	return env.Data, nil
}

// classifyTransportError separates deadline expiry from other connection
// failures.
func classifyTransportError(endpoint string, err error) *FetchError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &FetchError{Kind: KindTimeout, Endpoint: endpoint, Message: "deadline exceeded", Err: err}
	}
	return &FetchError{Kind: KindTransport, Endpoint: endpoint, Err: err}
}

// searchData is the "data" member of a search response.
type searchData struct {
	Items []searchItem `json:"items" validate:"dive"`
}

// searchItem is the upstream wire schema of one exercise.
type searchItem struct {
	ExerciseID    string   `json:"exerciseId" validate:"required,max=64"`
	Name          string   `json:"name" validate:"required,max=200"`
	GifURL        string   `json:"gifUrl" validate:"omitempty,url"`
	Instructions  []string `json:"instructions"`
	TargetMuscles []string `json:"targetMuscles"`
	BodyParts     []string `json:"bodyParts"`
	Equipments    []string `json:"equipments"`
}

func (s searchItem) toModel() models.CandidateItem {
	return models.CandidateItem{
		ID:            s.ExerciseID,
		Name:          s.Name,
		MediaURL:      s.GifURL,
		Instructions:  s.Instructions,
		TargetMuscles: s.TargetMuscles,
		BodyRegions:   s.BodyParts,
		Equipment:     s.Equipments,
	}
}

// SearchItems fetches up to limit items matching term. Payloads that do not
// match the item schema fail as KindMalformed.
func (c *Client) SearchItems(ctx context.Context, term string, limit int) ([]models.CandidateItem, error) {
	params := url.Values{}
	params.Set("search", term)
	params.Set("limit", strconv.Itoa(limit))

	raw, err := c.Request(ctx, SearchEndpoint, params)
	if err != nil {
		return nil, err
	}

	var data searchData
	if len(raw) == 0 || string(raw) == "null" {
		return nil, &FetchError{Kind: KindMalformed, Endpoint: SearchEndpoint, Message: "missing data"}
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &FetchError{Kind: KindMalformed, Endpoint: SearchEndpoint, Message: "invalid items", Err: err}
	}
	if verr := validation.ValidateStruct(&data); verr != nil {
		return nil, &FetchError{Kind: KindMalformed, Endpoint: SearchEndpoint, Message: verr.Error(), Err: verr}
	}

	items := make([]models.CandidateItem, 0, len(data.Items))
	for _, it := range data.Items {
		items = append(items, it.toModel())
	}
	return items, nil
}

// readBodyForError reads at most maxErrorBodySize bytes for diagnostics.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
