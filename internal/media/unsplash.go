// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package media

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tomtom215/fitcurator/internal/config"
	"github.com/tomtom215/fitcurator/internal/models"
)

const unsplashDefaultBase = "https://api.unsplash.com"

// UnsplashProvider searches photos with the high content filter.
type UnsplashProvider struct {
	httpProvider
}

type unsplashResponse struct {
	Results []struct {
		ID             string `json:"id"`
		Width          int    `json:"width"`
		Height         int    `json:"height"`
		Description    string `json:"description"`
		AltDescription string `json:"alt_description"`
		URLs           struct {
			Regular string `json:"regular"`
			Small   string `json:"small"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
	} `json:"results"`
}

// NewUnsplashProvider creates an Unsplash provider. The API key is the access key.
func NewUnsplashProvider(cfg config.ProviderConfig, opts ProviderOptions) *UnsplashProvider {
	return &UnsplashProvider{httpProvider: newHTTPProvider(config.ProviderUnsplash, cfg, unsplashDefaultBase, opts)}
}

// Search queries /search/photos.
func (p *UnsplashProvider) Search(ctx context.Context, query string, limit int) ([]models.FallbackMedia, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(clampLimit(limit)))
	params.Set("content_filter", "high")

	header := http.Header{}
	header.Set("Authorization", "Client-ID "+p.apiKey)
	header.Set("Accept-Version", "v1")

	var resp unsplashResponse
	if err := p.getJSON(ctx, "/search/photos", params, header, &resp); err != nil {
		return nil, err
	}

	out := make([]models.FallbackMedia, 0, len(resp.Results))
	for _, r := range resp.Results {
		if r.URLs.Regular == "" {
			continue
		}
		title := r.Description
		if title == "" {
			title = r.AltDescription
		}
		out = append(out, models.FallbackMedia{
			ID:         r.ID,
			URL:        r.URLs.Regular,
			Title:      title,
			Width:      r.Width,
			Height:     r.Height,
			Provider:   p.name,
			PreviewURL: r.URLs.Thumb,
		})
	}
	return out, nil
}
