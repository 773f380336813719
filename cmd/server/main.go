// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/nutriproxy/docs" // Import generated swagger docs
	"github.com/tomtom215/nutriproxy/internal/api"
	"github.com/tomtom215/nutriproxy/internal/cache"
	"github.com/tomtom215/nutriproxy/internal/config"
	"github.com/tomtom215/nutriproxy/internal/fatsecret"
	"github.com/tomtom215/nutriproxy/internal/foods"
	"github.com/tomtom215/nutriproxy/internal/logging"
	"github.com/tomtom215/nutriproxy/internal/metrics"
	"github.com/tomtom215/nutriproxy/internal/middleware"
	"github.com/tomtom215/nutriproxy/internal/supervisor"
	"github.com/tomtom215/nutriproxy/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// httpShutdownTimeout bounds connection draining on shutdown.
const httpShutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Service:   "nutriproxy",
	})
	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Nutriproxy with supervisor tree")

	if !cfg.FatSecret.HasCredentials() {
		logging.Warn().Msg("FatSecret credentials not configured; food endpoints will fail until FATSECRET_CLIENT_ID and FATSECRET_CLIENT_SECRET are set")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Strs("cors_origins", cfg.Security.CORSOrigins).Msg("Production instance accepts requests from any origin")
	}

	// === DOMAIN WIRING ===

	store := cache.NewStore(cache.New(cache.DefaultSearchTTL), map[cache.Namespace]time.Duration{
		cache.NamespaceSearch:  cfg.Cache.SearchTTL,
		cache.NamespaceDetail:  cfg.Cache.DetailTTL,
		cache.NamespaceBarcode: cfg.Cache.BarcodeTTL,
	})

	outbound := &http.Client{Timeout: cfg.FatSecret.Timeout}
	tokens := fatsecret.NewTokenManager(&cfg.FatSecret, store, outbound)
	breaker := fatsecret.NewCircuitBreakerClient(
		fatsecret.NewClient(&cfg.FatSecret, tokens, outbound),
		fatsecret.DefaultBreakerSettings(),
	)
	foodService := foods.NewService(breaker, store)

	monitor := middleware.NewPerformanceMonitor(middleware.DefaultLatencyWindow)
	handler := api.NewHandler(foodService, cfg, version,
		api.WithCacheStats(store),
		api.WithBreaker(breaker),
		api.WithPerformanceMonitor(monitor),
	)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)), monitor)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddMaintenanceService(services.NewCacheJanitorService(store, cfg.Cache.CleanupInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, httpShutdownTimeout))

	logStartupBanner(cfg, server.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	stop()

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// logStartupBanner lists the endpoints and the upstream the proxy talks to.
func logStartupBanner(cfg *config.Config, addr string) {
	logging.Info().
		Str("addr", addr).
		Str("token_url", cfg.FatSecret.TokenURL).
		Str("api_url", cfg.FatSecret.APIURL).
		Str("client_id", logging.MaskSecret(cfg.FatSecret.ClientID)).
		Dur("search_ttl", cfg.Cache.SearchTTL).
		Dur("detail_ttl", cfg.Cache.DetailTTL).
		Msg("Nutriproxy listening")

	for _, route := range []string{
		"GET /api/status",
		"GET /api/food/search?query=",
		"GET /api/food/{id}",
		"GET /api/food/barcode/{code}",
		"GET /metrics",
		"GET /swagger/index.html",
	} {
		logging.Debug().Str("route", route).Msg("Route registered")
	}
}
