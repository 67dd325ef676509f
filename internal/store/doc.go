// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

// Package store persists the product catalog and user wishlists in BadgerDB.
//
// # Key Layout
//
//	item:<id>           JSON-encoded recommend.Item
//	meta:catalog_order  JSON array of item ids in insertion order
//	wishlist:<user>     JSON array of item ids in the order they were added
//
// Values are encoded with goccy/go-json. A wishlist key is deleted once
// its list becomes empty, so Users only lists users with selections.
//
// # Snapshots
//
// Snapshot reads the catalog and all wishlists in a single read
// transaction and hands them to the ranking engine:
//
//	catalog, history, err := st.Snapshot(ctx)
//	if err != nil {
//	    return err
//	}
//	items := engine.Hybrid(ctx, catalog, history, userID)
//
// Deleting an item removes it from every wishlist in the same transaction.
//
// # Maintenance
//
// RunGC reclaims value log space and is driven by a supervised background
// service. In-memory stores skip GC.
package store
