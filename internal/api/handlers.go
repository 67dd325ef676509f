// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package api

import (
	"context"
	"time"

	"github.com/tomtom215/wishrank/internal/middleware"
	"github.com/tomtom215/wishrank/internal/recommend"
	"github.com/tomtom215/wishrank/internal/store"
)

// Store is the persistence surface the handlers need. *store.Store
// satisfies it.
type Store interface {
	PutItems(ctx context.Context, items []recommend.Item) (int, error)
	Item(ctx context.Context, id string) (recommend.Item, error)
	Items(ctx context.Context) ([]recommend.Item, error)
	DeleteItem(ctx context.Context, id string) error

	AddToWishlist(ctx context.Context, userID, itemID string) (bool, error)
	RemoveFromWishlist(ctx context.Context, userID, itemID string) (bool, error)
	Wishlist(ctx context.Context, userID string) ([]string, error)
	Histories(ctx context.Context) (recommend.SelectionHistory, error)
	Snapshot(ctx context.Context) ([]recommend.Item, recommend.SelectionHistory, error)

	Stats(ctx context.Context) (store.Stats, error)
}

// HandlerOptions carries the settings handlers read at request time.
type HandlerOptions struct {
	Version      string
	MaxBodyBytes int64
}

// Handler handles all HTTP requests.
type Handler struct {
	store     Store
	engine    *recommend.Engine
	perf      *middleware.PerformanceMonitor
	opts      HandlerOptions
	startTime time.Time
}

// NewHandler creates a new Handler instance. perf may be nil, in which case
// a monitor with default settings is created.
func NewHandler(st Store, engine *recommend.Engine, perf *middleware.PerformanceMonitor, opts HandlerOptions) *Handler {
	if perf == nil {
		perf = middleware.NewPerformanceMonitor(0, 0)
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 10 << 20
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Handler{
		store:     st,
		engine:    engine,
		perf:      perf,
		opts:      opts,
		startTime: time.Now(),
	}
}
