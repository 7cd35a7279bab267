// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// setRequiredEnv points the loader at an empty config path and supplies the
// one setting without a default.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("CATALOG_BASE_URL", "https://catalog.test/api/v1")
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Catalog.PerMinuteLimit != 60 || cfg.Catalog.DailyLimit != 1000 {
		t.Errorf("catalog limits = %d/%d, want 60/1000", cfg.Catalog.PerMinuteLimit, cfg.Catalog.DailyLimit)
	}
	if cfg.Catalog.Timeout != 10*time.Second {
		t.Errorf("Catalog.Timeout = %v, want 10s", cfg.Catalog.Timeout)
	}
	if cfg.Cache.FallbackTTL != time.Hour {
		t.Errorf("Cache.FallbackTTL = %v, want 1h", cfg.Cache.FallbackTTL)
	}
	if cfg.LinkCheck.Timeout != 3*time.Second {
		t.Errorf("LinkCheck.Timeout = %v, want 3s", cfg.LinkCheck.Timeout)
	}
	want := []string{ProviderGiphy, ProviderPixabay, ProviderUnsplash}
	if !reflect.DeepEqual(cfg.Fallback.Priority, want) {
		t.Errorf("Fallback.Priority = %v, want %v", cfg.Fallback.Priority, want)
	}
}

func TestLoadWithKoanfRequiresCatalogURL(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("CATALOG_BASE_URL", "")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected an error without CATALOG_BASE_URL")
	}
}

func TestLoadWithKoanfDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.Catalog.BaseURL != "https://catalog.test/api/v1" {
		t.Errorf("BaseURL = %q", cfg.Catalog.BaseURL)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if !cfg.Catalog.CircuitBreaker {
		t.Error("circuit breaker should default on")
	}
}

func TestLoadWithKoanfEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CATALOG_RATE_PER_MINUTE", "5")
	t.Setenv("CATALOG_RATE_PER_DAY", "50")
	t.Setenv("CACHE_RESULTS_TTL", "2m")
	t.Setenv("FALLBACK_PRIORITY", "Pixabay, giphy")
	t.Setenv("PIXABAY_API_KEY", "pk")
	t.Setenv("CATALOG_CIRCUIT_BREAKER", "false")
	t.Setenv("SOME_UNRELATED_VAR", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.Catalog.PerMinuteLimit != 5 || cfg.Catalog.DailyLimit != 50 {
		t.Errorf("limits = %d/%d, want 5/50", cfg.Catalog.PerMinuteLimit, cfg.Catalog.DailyLimit)
	}
	if cfg.Cache.ResultsTTL != 2*time.Minute {
		t.Errorf("ResultsTTL = %v, want 2m", cfg.Cache.ResultsTTL)
	}
	if want := []string{"pixabay", "giphy"}; !reflect.DeepEqual(cfg.Fallback.Priority, want) {
		t.Errorf("Priority = %v, want %v", cfg.Fallback.Priority, want)
	}
	if cfg.Fallback.Pixabay.APIKey != "pk" {
		t.Errorf("Pixabay.APIKey = %q", cfg.Fallback.Pixabay.APIKey)
	}
	if cfg.Catalog.CircuitBreaker {
		t.Error("CATALOG_CIRCUIT_BREAKER=false not applied")
	}
}

func TestLoadWithKoanfFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
catalog:
  base_url: https://file.test/api
  per_minute_limit: 20
cache:
  capacity: 250
fallback:
  priority: [unsplash]
  unsplash:
    api_key: from-file
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("CACHE_CAPACITY", "300")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.Catalog.BaseURL != "https://file.test/api" || cfg.Catalog.PerMinuteLimit != 20 {
		t.Errorf("file values not applied: %+v", cfg.Catalog)
	}
	if cfg.Cache.Capacity != 300 {
		t.Errorf("env should win over file: capacity = %d", cfg.Cache.Capacity)
	}
	if cfg.Fallback.Unsplash.APIKey != "from-file" || len(cfg.Fallback.Priority) != 1 {
		t.Errorf("fallback = %+v", cfg.Fallback)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"CATALOG_BASE_URL":    "catalog.base_url",
		"UNSPLASH_ACCESS_KEY": "fallback.unsplash.api_key",
		"LOG_LEVEL":           "logging.level",
		"PATH":                "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" Giphy,,PIXABAY ,", true)
	if want := []string{"giphy", "pixabay"}; !reflect.DeepEqual(got, want) {
		t.Errorf("splitList = %v, want %v", got, want)
	}
	got = splitList("https://A.example,https://b.example", false)
	if got[0] != "https://A.example" {
		t.Errorf("case changed: %v", got)
	}
}
