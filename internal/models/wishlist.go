// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package models

import (
	"github.com/tomtom215/wishrank/internal/recommend"
)

// Wishlist is one user's saved item ids together with the resolved items.
// Ids whose item has left the catalog appear in ItemIDs only.
type Wishlist struct {
	UserID  string           `json:"user_id"`
	ItemIDs []string         `json:"item_ids"`
	Items   []recommend.Item `json:"items"`
}

// WishlistChange reports the outcome of adding or removing one item.
type WishlistChange struct {
	UserID  string   `json:"user_id"`
	ItemID  string   `json:"item_id"`
	Changed bool     `json:"changed"`
	ItemIDs []string `json:"item_ids"`
}

// WishlistSummary is one entry of the wishlist index.
type WishlistSummary struct {
	UserID string `json:"user_id"`
	Items  int    `json:"items"`
}
