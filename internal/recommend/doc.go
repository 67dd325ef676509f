// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

// Package recommend ranks jewelry catalog items for a user from wishlists.
//
// # Architecture
//
// Three rankings are built from a catalog snapshot and a map of per-user
// selection histories:
//
//   - Content: a preference profile counts how often each attribute value
//     (category, type, material, gemstone, occasion, purity, gender)
//     appears among the user's selections. Every other item is scored by
//     weighted attribute matches, flag boosts and closeness to the user's
//     price band.
//   - Collaborative: other users are ranked by Jaccard similarity of
//     selection sets; the items the three nearest users chose, and the
//     target did not, come first, backfilled from the content ranking.
//   - Hybrid: the two lists are interleaved position by position,
//     deduplicated and topped up with trending items.
//
// Every list holds at most 12 items.
//
// # Determinism
//
// Identical inputs always produce identical output. Score ties keep
// catalog order and similarity ties are broken by user id.
//
// # Degradation
//
// Ranking never fails. Unknown users, empty histories and ids that no
// longer resolve fall back to flag-based lists (bestsellers, trending). A
// nil catalog or history is logged as misuse and yields an empty list.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logging.WithComponent("recommend"))
//	if err != nil {
//	    return err
//	}
//	defer engine.Close()
//
//	catalog, history, err := store.Snapshot(ctx)
//	items := engine.Hybrid(ctx, catalog, history, "alice")
//
// # Thread Safety
//
// The engine holds no snapshot state; concurrent calls need no locking.
// Profiles may be cached under a digest of the user, the user's selections
// and the catalog, so a hit is always equivalent to a rebuild.
package recommend
