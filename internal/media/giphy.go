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

const giphyDefaultBase = "https://api.giphy.com"

// GiphyProvider searches animated GIFs, restricted to the "g" rating.
type GiphyProvider struct {
	httpProvider
}

type giphyImage struct {
	URL    string `json:"url"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

type giphyResponse struct {
	Data []struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Images struct {
			Original     giphyImage `json:"original"`
			FixedWidth   giphyImage `json:"fixed_width"`
			PreviewStill giphyImage `json:"fixed_width_still"`
		} `json:"images"`
	} `json:"data"`
}

// NewGiphyProvider creates a Giphy provider. An empty cfg.BaseURL uses the public API.
func NewGiphyProvider(cfg config.ProviderConfig, opts ProviderOptions) *GiphyProvider {
	return &GiphyProvider{httpProvider: newHTTPProvider(config.ProviderGiphy, cfg, giphyDefaultBase, opts)}
}

// Search queries /v1/gifs/search.
func (p *GiphyProvider) Search(ctx context.Context, query string, limit int) ([]models.FallbackMedia, error) {
	params := url.Values{}
	params.Set("api_key", p.apiKey)
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(clampLimit(limit)))
	params.Set("rating", "g")

	var resp giphyResponse
	if err := p.getJSON(ctx, "/v1/gifs/search", params, nil, &resp); err != nil {
		return nil, err
	}

	out := make([]models.FallbackMedia, 0, len(resp.Data))
	for _, d := range resp.Data {
		img := d.Images.FixedWidth
		if img.URL == "" {
			img = d.Images.Original
		}
		if img.URL == "" {
			continue
		}
		out = append(out, models.FallbackMedia{
			ID:         d.ID,
			URL:        img.URL,
			Title:      d.Title,
			Width:      atoiOrZero(img.Width),
			Height:     atoiOrZero(img.Height),
			Provider:   p.name,
			PreviewURL: d.Images.PreviewStill.URL,
		})
	}
	return out, nil
}

// Giphy reports dimensions as decimal strings.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
