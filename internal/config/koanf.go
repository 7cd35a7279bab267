// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/fitcurator/config.yaml",
	"/etc/fitcurator/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   60,
			RateLimitWindow: time.Minute,
		},
		Catalog: CatalogConfig{
			Timeout:        10 * time.Second,
			PerMinuteLimit: 60,
			DailyLimit:     1000,
			CircuitBreaker: true,
		},
		Cache: CacheConfig{
			Capacity:        1000,
			DefaultTTL:      10 * time.Minute,
			CatalogTTL:      30 * time.Minute,
			FallbackTTL:     time.Hour,
			ResultsTTL:      15 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
		Fallback: FallbackConfig{
			Priority:          []string{ProviderGiphy, ProviderPixabay, ProviderUnsplash},
			Timeout:           5 * time.Second,
			RequestsPerMinute: 30,
			Qualifier:         "exercise",
			Limit:             1,
			Giphy:             ProviderConfig{BaseURL: "https://api.giphy.com"},
			Pixabay:           ProviderConfig{BaseURL: "https://pixabay.com"},
			Unsplash:          ProviderConfig{BaseURL: "https://api.unsplash.com"},
		},
		LinkCheck: LinkCheckConfig{
			Timeout: 3 * time.Second,
		},
		Pipeline: PipelineConfig{
			FetchLimit:          10,
			RepairConcurrency:   0,
			MaxItemsPerCategory: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf layers defaults, the optional config file and environment
// variables, then validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// sliceConfigPaths arrive from the environment as comma-separated strings.
// The value says whether entries are lowercased; provider names are, CORS
// origins are compared verbatim.
var sliceConfigPaths = map[string]bool{
	"server.cors_origins": false,
	"fallback.priority":   true,
}

func processSliceFields(k *koanf.Koanf) error {
	for path, lower := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok || raw == "" {
			continue
		}
		parts := splitList(raw, lower)
		if len(parts) == 0 {
			continue
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

func splitList(raw string, lower bool) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if lower {
			p = strings.ToLower(p)
		}
		out = append(out, p)
	}
	return out
}

// envMappings is the complete set of recognized environment variables.
// Anything not listed is ignored.
var envMappings = map[string]string{
	"http_host":           "server.host",
	"http_port":           "server.port",
	"request_timeout":     "server.request_timeout",
	"shutdown_timeout":    "server.shutdown_timeout",
	"cors_origins":        "server.cors_origins",
	"rate_limit_requests": "server.rate_limit_reqs",
	"rate_limit_window":   "server.rate_limit_window",
	"disable_rate_limit":  "server.rate_limit_disabled",

	"catalog_base_url":        "catalog.base_url",
	"catalog_api_key":         "catalog.api_key",
	"catalog_timeout":         "catalog.timeout",
	"catalog_rate_per_minute": "catalog.per_minute_limit",
	"catalog_rate_per_day":    "catalog.daily_limit",
	"catalog_circuit_breaker": "catalog.circuit_breaker",

	"cache_capacity":         "cache.capacity",
	"cache_default_ttl":      "cache.default_ttl",
	"cache_catalog_ttl":      "cache.catalog_ttl",
	"cache_fallback_ttl":     "cache.fallback_ttl",
	"cache_results_ttl":      "cache.results_ttl",
	"cache_cleanup_interval": "cache.cleanup_interval",

	"fallback_priority":        "fallback.priority",
	"fallback_timeout":         "fallback.timeout",
	"fallback_rate_per_minute": "fallback.requests_per_minute",
	"fallback_qualifier":       "fallback.qualifier",
	"fallback_limit":           "fallback.limit",
	"giphy_api_key":            "fallback.giphy.api_key",
	"giphy_base_url":           "fallback.giphy.base_url",
	"pixabay_api_key":          "fallback.pixabay.api_key",
	"pixabay_base_url":         "fallback.pixabay.base_url",
	"unsplash_access_key":      "fallback.unsplash.api_key",
	"unsplash_base_url":        "fallback.unsplash.base_url",

	"linkcheck_timeout": "linkcheck.timeout",

	"pipeline_fetch_limit":        "pipeline.fetch_limit",
	"pipeline_repair_concurrency": "pipeline.repair_concurrency",
	"pipeline_max_items":          "pipeline.max_items_per_category",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path, or
// "" to drop it.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
