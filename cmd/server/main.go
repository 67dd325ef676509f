// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/wishrank/internal/api"
	"github.com/tomtom215/wishrank/internal/config"
	"github.com/tomtom215/wishrank/internal/logging"
	"github.com/tomtom215/wishrank/internal/metrics"
	"github.com/tomtom215/wishrank/internal/middleware"
	"github.com/tomtom215/wishrank/internal/recommend"
	"github.com/tomtom215/wishrank/internal/store"
	"github.com/tomtom215/wishrank/internal/supervisor"
	"github.com/tomtom215/wishrank/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

//nolint:gocritic // run owns cfg for the lifetime of the process
func run(cfg *config.Config) error {
	startTime := time.Now()
	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("log_level", logging.GetLevel().String()).
		Str("store_path", cfg.Store.Path).
		Bool("store_in_memory", cfg.Store.InMemory).
		Msg("Starting Wishrank")

	if cfg.HasWildcardCORS() && cfg.IsProduction() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}

	st, err := store.Open(store.Config{
		Path:             cfg.Store.Path,
		InMemory:         cfg.Store.InMemory,
		SyncWrites:       cfg.Store.SyncWrites,
		ValueLogFileSize: cfg.Store.ValueLogFileSize,
		GCRatio:          cfg.Store.GCRatio,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Err(err).Msg("Error closing store")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Store.SeedReference {
		if err := seedReferenceCatalog(ctx, st); err != nil {
			return err
		}
	}

	engine, err := recommend.NewEngine(&cfg.Recommend, logging.WithComponent("recommend"))
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}
	defer engine.Close()

	perf := middleware.NewPerformanceMonitor(0, middleware.DefaultSlowThreshold)
	handler := api.NewHandler(st, engine, perf, api.HandlerOptions{
		Version:      version,
		MaxBodyBytes: cfg.Security.MaxBodyBytes,
	})
	mw := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(handler, mw).SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	// sutureslog consumes slog; the adapter forwards it to zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewStoreService(st, services.StoreServiceConfig{
		Interval:  cfg.Store.GCInterval,
		StartTime: startTime,
	}, logging.WithComponent("supervisor")))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout, logging.WithComponent("supervisor")))

	logging.Info().Str("addr", addr).Msg("Starting supervisor tree")
	err = tree.Serve(ctx)

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}
	return nil
}
