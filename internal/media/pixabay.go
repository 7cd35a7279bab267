// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package media

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tomtom215/fitcurator/internal/config"
	"github.com/tomtom215/fitcurator/internal/models"
)

const (
	pixabayDefaultBase = "https://pixabay.com"
	pixabayMinPerPage  = 3 // API rejects per_page below 3
)

// PixabayProvider searches photos with safesearch enabled.
type PixabayProvider struct {
	httpProvider
}

type pixabayResponse struct {
	TotalHits int `json:"totalHits"`
	Hits      []struct {
		ID              int    `json:"id"`
		Tags            string `json:"tags"`
		PreviewURL      string `json:"previewURL"`
		WebformatURL    string `json:"webformatURL"`
		WebformatWidth  int    `json:"webformatWidth"`
		WebformatHeight int    `json:"webformatHeight"`
	} `json:"hits"`
}

// NewPixabayProvider creates a Pixabay provider. An empty cfg.BaseURL uses the public API.
func NewPixabayProvider(cfg config.ProviderConfig, opts ProviderOptions) *PixabayProvider {
	return &PixabayProvider{httpProvider: newHTTPProvider(config.ProviderPixabay, cfg, pixabayDefaultBase, opts)}
}

// Search queries /api/.
func (p *PixabayProvider) Search(ctx context.Context, query string, limit int) ([]models.FallbackMedia, error) {
	limit = clampLimit(limit)
	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("q", query)
	params.Set("per_page", strconv.Itoa(max(limit, pixabayMinPerPage)))
	params.Set("safesearch", "true")
	params.Set("image_type", "photo")

	var resp pixabayResponse
	if err := p.getJSON(ctx, "/api/", params, nil, &resp); err != nil {
		return nil, err
	}

	out := make([]models.FallbackMedia, 0, min(limit, len(resp.Hits)))
	for _, h := range resp.Hits {
		if len(out) == limit {
			break
		}
		if h.WebformatURL == "" {
			continue
		}
		out = append(out, models.FallbackMedia{
			ID:         strconv.Itoa(h.ID),
			URL:        h.WebformatURL,
			Title:      h.Tags,
			Width:      h.WebformatWidth,
			Height:     h.WebformatHeight,
			Provider:   p.name,
			PreviewURL: h.PreviewURL,
		})
	}
	return out, nil
}
