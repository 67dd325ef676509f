// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/wishrank/internal/catalog"
	"github.com/tomtom215/wishrank/internal/logging"
	"github.com/tomtom215/wishrank/internal/recommend"
)

// catalogSeeder is the part of the store used for seeding.
type catalogSeeder interface {
	ItemCount(ctx context.Context) (int, error)
	PutItems(ctx context.Context, items []recommend.Item) (int, error)
}

// seedReferenceCatalog loads the reference catalog into an empty store.
// A store that already holds items is left untouched.
func seedReferenceCatalog(ctx context.Context, st catalogSeeder) error {
	n, err := st.ItemCount(ctx)
	if err != nil {
		return fmt.Errorf("count catalog items: %w", err)
	}
	if n > 0 {
		logging.Debug().Int("items", n).Msg("Catalog present, skipping reference seed")
		return nil
	}

	added, err := st.PutItems(ctx, catalog.Reference())
	if err != nil {
		return fmt.Errorf("seed reference catalog: %w", err)
	}
	logging.Info().Int("items", added).Msg("Seeded reference catalog")
	return nil
}
