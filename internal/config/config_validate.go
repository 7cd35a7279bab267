// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateFallback(); err != nil {
		return err
	}
	if err := c.validatePipeline(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.Server.RateLimitDisabled {
		return nil
	}
	if c.Server.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1 when rate limiting is enabled")
	}
	if c.Server.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s, got %v", c.Server.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("CATALOG_BASE_URL is required")
	}
	if err := validateHTTPURL(c.Catalog.BaseURL); err != nil {
		return fmt.Errorf("CATALOG_BASE_URL: %w", err)
	}
	if c.Catalog.PerMinuteLimit < 1 {
		return fmt.Errorf("CATALOG_RATE_PER_MINUTE must be at least 1, got %d", c.Catalog.PerMinuteLimit)
	}
	if c.Catalog.DailyLimit < c.Catalog.PerMinuteLimit {
		return fmt.Errorf("CATALOG_RATE_PER_DAY (%d) must not be lower than CATALOG_RATE_PER_MINUTE (%d)",
			c.Catalog.DailyLimit, c.Catalog.PerMinuteLimit)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("CATALOG_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("CACHE_CAPACITY must be at least 1, got %d", c.Cache.Capacity)
	}
	for name, ttl := range map[string]time.Duration{
		"CACHE_DEFAULT_TTL":  c.Cache.DefaultTTL,
		"CACHE_CATALOG_TTL":  c.Cache.CatalogTTL,
		"CACHE_FALLBACK_TTL": c.Cache.FallbackTTL,
		"CACHE_RESULTS_TTL":  c.Cache.ResultsTTL,
	} {
		if ttl <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, ttl)
		}
	}
	if c.Cache.CleanupInterval < time.Second {
		return fmt.Errorf("CACHE_CLEANUP_INTERVAL must be at least 1s, got %v", c.Cache.CleanupInterval)
	}
	return nil
}

func (c *Config) validateFallback() error {
	if len(c.Fallback.Priority) == 0 {
		return fmt.Errorf("FALLBACK_PRIORITY must name at least one provider")
	}
	seen := make(map[string]bool, len(c.Fallback.Priority))
	for _, name := range c.Fallback.Priority {
		p, ok := c.Fallback.Provider(name)
		if !ok {
			return fmt.Errorf("FALLBACK_PRIORITY: unknown provider %q (known: %s, %s, %s)",
				name, ProviderGiphy, ProviderPixabay, ProviderUnsplash)
		}
		if seen[name] {
			return fmt.Errorf("FALLBACK_PRIORITY: provider %q listed twice", name)
		}
		seen[name] = true
		if err := validateHTTPURL(p.BaseURL); err != nil {
			return fmt.Errorf("%s base URL: %w", name, err)
		}
	}
	if c.Fallback.Timeout <= 0 {
		return fmt.Errorf("FALLBACK_TIMEOUT must be positive")
	}
	if c.Fallback.RequestsPerMinute < 0 {
		return fmt.Errorf("FALLBACK_RATE_PER_MINUTE must not be negative")
	}
	if c.Fallback.Limit < 1 {
		return fmt.Errorf("FALLBACK_LIMIT must be at least 1, got %d", c.Fallback.Limit)
	}
	if c.LinkCheck.Timeout <= 0 {
		return fmt.Errorf("LINKCHECK_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if c.Pipeline.FetchLimit < 1 {
		return fmt.Errorf("PIPELINE_FETCH_LIMIT must be at least 1, got %d", c.Pipeline.FetchLimit)
	}
	if c.Pipeline.RepairConcurrency < 0 {
		return fmt.Errorf("PIPELINE_REPAIR_CONCURRENCY must not be negative")
	}
	if c.Pipeline.MaxItemsPerCategory < 0 {
		return fmt.Errorf("PIPELINE_MAX_ITEMS must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
