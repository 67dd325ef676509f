// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wishrank/internal/metrics"
	"github.com/tomtom215/wishrank/internal/store"
)

// StoreMaintainer is the part of *store.Store the maintenance loop drives.
type StoreMaintainer interface {
	RunGC() error
	Stats(ctx context.Context) (store.Stats, error)
}

// StoreServiceConfig holds configuration for the store maintenance service.
type StoreServiceConfig struct {
	// Interval is how often value log GC runs and gauges refresh.
	// Default: 10m
	Interval time.Duration

	// StartTime is the process start, reported as the uptime gauge.
	StartTime time.Time
}

// StoreService periodically reclaims Badger value log space and refreshes
// the catalog, wishlist and uptime gauges.
type StoreService struct {
	store  StoreMaintainer
	config StoreServiceConfig
	logger zerolog.Logger
}

// NewStoreService creates a new store maintenance service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStoreService(st StoreMaintainer, cfg StoreServiceConfig, logger zerolog.Logger) *StoreService {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	if cfg.StartTime.IsZero() {
		cfg.StartTime = time.Now()
	}
	return &StoreService{
		store:  st,
		config: cfg,
		logger: logger.With().Str("service", "store-maintenance").Logger(),
	}
}

// Serve implements suture.Service. Gauges are refreshed once on start and
// then on every tick. A failed GC is logged and retried on the next tick.
func (s *StoreService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.config.Interval).Msg("store maintenance starting")
	s.refresh(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("store maintenance shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce performs one GC pass followed by a gauge refresh.
func (s *StoreService) runOnce(ctx context.Context) {
	start := time.Now()
	if err := s.store.RunGC(); err != nil {
		s.logger.Warn().Err(err).Msg("value log gc failed")
	} else {
		s.logger.Debug().Dur("duration", time.Since(start)).Msg("value log gc complete")
	}
	s.refresh(ctx)
}

func (s *StoreService) refresh(ctx context.Context) {
	metrics.UpdateUptime(s.config.StartTime)

	stats, err := s.store.Stats(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Msg("store stats failed")
		}
		return
	}
	s.logger.Debug().
		Int("items", stats.Items).
		Int("users", stats.Users).
		Msg("store gauges refreshed")
}

// String returns the service name for logging.
func (s *StoreService) String() string {
	return "store-maintenance"
}
