// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/fitcurator/internal/api"
	"github.com/tomtom215/fitcurator/internal/cache"
	"github.com/tomtom215/fitcurator/internal/catalog"
	"github.com/tomtom215/fitcurator/internal/config"
	"github.com/tomtom215/fitcurator/internal/linkcheck"
	"github.com/tomtom215/fitcurator/internal/logging"
	"github.com/tomtom215/fitcurator/internal/media"
	"github.com/tomtom215/fitcurator/internal/pipeline"
	"github.com/tomtom215/fitcurator/internal/supervisor"
	"github.com/tomtom215/fitcurator/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})
	logging.Info().
		Str("catalog_url", cfg.Catalog.BaseURL).
		Strs("fallback_priority", cfg.Fallback.Priority).
		Int("cache_capacity", cfg.Cache.Capacity).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shared := cache.NewBoundedCache(cfg.Cache.Capacity, cfg.Cache.DefaultTTL)

	engine, err := buildEngine(cfg, shared)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build pipeline")
	}

	handler := api.NewHandler(engine, cfg.Server.RequestTimeout)
	router := api.NewRouter(handler, api.NewMiddleware(api.MiddlewareConfigFrom(&cfg.Server)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddDataService(services.NewCacheJanitorService(shared, cfg.Cache.CleanupInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Fitcurator stopped")
}

// buildEngine wires the catalog, fallback and link-check stages around one
// shared cache.
func buildEngine(cfg *config.Config, shared *cache.BoundedCache) (*pipeline.Engine, error) {
	client := catalog.NewClient(&cfg.Catalog)
	var fetcher catalog.Fetcher = client
	if cfg.Catalog.CircuitBreaker {
		fetcher = catalog.NewCircuitBreakerClient(client, catalog.BreakerSettings{})
		logging.Info().Msg("Catalog circuit breaker enabled")
	}
	cached := catalog.NewCachedCatalog(fetcher, shared, cfg.Cache.CatalogTTL)

	providers, err := media.NewProviders(&cfg.Fallback)
	if err != nil {
		return nil, err
	}
	resolver := media.NewResolver(shared, cfg.Cache.FallbackTTL, providers...).
		WithQualifier(cfg.Fallback.Qualifier)
	for name, configured := range resolver.Providers() {
		if !configured {
			logging.Warn().Str("provider", name).Msg("Fallback provider has no API key and will be skipped")
		}
	}

	return pipeline.NewEngine(pipeline.Deps{
		Catalog:  cached,
		Resolver: resolver,
		Prober:   linkcheck.NewProber(cfg.LinkCheck.Timeout),
		Cache:    shared,
	}, pipeline.Config{
		FetchLimit:          cfg.Pipeline.FetchLimit,
		RepairConcurrency:   cfg.Pipeline.RepairConcurrency,
		MaxItemsPerCategory: cfg.Pipeline.MaxItemsPerCategory,
		FallbackLimit:       cfg.Fallback.Limit,
		ResultsTTL:          cfg.Cache.ResultsTTL,
	})
}
