// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

// Package config loads Fitcurator configuration.
//
// Configuration is read once at startup from three layers, later layers
// winning: built-in defaults, an optional YAML file, then a fixed set of
// environment variables. Nothing is re-read at runtime; rate limits, cache
// capacity and provider order are properties of the process.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("invalid configuration")
//	}
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration. It is immutable after Load.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Cache     CacheConfig     `koanf:"cache"`
	Fallback  FallbackConfig  `koanf:"fallback"`
	LinkCheck LinkCheckConfig `koanf:"linkcheck"`
	Pipeline  PipelineConfig  `koanf:"pipeline"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds the HTTP surface settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	RequestTimeout  time.Duration `koanf:"request_timeout"` // caller-side deadline for one recommendation request
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"` // per client IP
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig configures the upstream exercise catalog client.
//
// Environment Variables:
//   - CATALOG_BASE_URL: catalog API root, e.g. https://catalog.example.com/api/v1 (required)
//   - CATALOG_API_KEY: sent as X-API-Key when set
//   - CATALOG_RATE_PER_MINUTE / CATALOG_RATE_PER_DAY: upstream quota (default 60 / 1000)
//   - CATALOG_TIMEOUT: per-request deadline (default 10s)
//   - CATALOG_CIRCUIT_BREAKER: wrap the client in a circuit breaker (default true)
type CatalogConfig struct {
	BaseURL        string        `koanf:"base_url"`
	APIKey         string        `koanf:"api_key"`
	Timeout        time.Duration `koanf:"timeout"`
	PerMinuteLimit int           `koanf:"per_minute_limit"`
	DailyLimit     int           `koanf:"daily_limit"`
	CircuitBreaker bool          `koanf:"circuit_breaker"`
}

// CacheConfig sizes the shared bounded cache and the TTL of each data class.
type CacheConfig struct {
	Capacity        int           `koanf:"capacity"`
	DefaultTTL      time.Duration `koanf:"default_ttl"`
	CatalogTTL      time.Duration `koanf:"catalog_ttl"`
	FallbackTTL     time.Duration `koanf:"fallback_ttl"`
	ResultsTTL      time.Duration `koanf:"results_ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// FallbackConfig configures the media provider cascade. Priority lists
// provider names in the order they are tried; a provider without a key is
// skipped.
type FallbackConfig struct {
	Priority          []string       `koanf:"priority"`
	Timeout           time.Duration  `koanf:"timeout"`
	RequestsPerMinute int            `koanf:"requests_per_minute"` // per provider, 0 disables limiting
	Qualifier         string         `koanf:"qualifier"`
	Limit             int            `koanf:"limit"`
	Giphy             ProviderConfig `koanf:"giphy"`
	Pixabay           ProviderConfig `koanf:"pixabay"`
	Unsplash          ProviderConfig `koanf:"unsplash"`
}

// ProviderConfig is one media provider's endpoint and credential.
type ProviderConfig struct {
	BaseURL string `koanf:"base_url"`
	APIKey  string `koanf:"api_key"`
}

// Provider returns the settings for a provider by name.
func (f FallbackConfig) Provider(name string) (ProviderConfig, bool) {
	switch name {
	case ProviderGiphy:
		return f.Giphy, true
	case ProviderPixabay:
		return f.Pixabay, true
	case ProviderUnsplash:
		return f.Unsplash, true
	}
	return ProviderConfig{}, false
}

// Known fallback provider names.
const (
	ProviderGiphy    = "giphy"
	ProviderPixabay  = "pixabay"
	ProviderUnsplash = "unsplash"
)

// LinkCheckConfig configures the media link probe.
type LinkCheckConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

// PipelineConfig tunes the orchestrator.
type PipelineConfig struct {
	FetchLimit          int `koanf:"fetch_limit"`            // items requested per category
	RepairConcurrency   int `koanf:"repair_concurrency"`     // 0 = one goroutine per item
	MaxItemsPerCategory int `koanf:"max_items_per_category"` // 0 = no truncation
}

// LoggingConfig mirrors logging.Config for the file and env layers.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads and validates configuration.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
