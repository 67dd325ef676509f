// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

// Flag-based popularity lists. These serve cold-start users with no usable
// history and backfill short personalised rankings. All of them keep
// catalog order.

// bestsellers returns up to limit bestseller items.
func bestsellers(catalog []Item, limit int) []Item {
	return flagged(catalog, limit, func(it *Item) bool { return it.IsBestseller })
}

// trendingOrBestsellers returns up to limit items that are trending or
// bestsellers.
func trendingOrBestsellers(catalog []Item, limit int) []Item {
	return flagged(catalog, limit, func(it *Item) bool { return it.IsTrending || it.IsBestseller })
}

func flagged(catalog []Item, limit int, keep func(*Item) bool) []Item {
	out := make([]Item, 0, min(limit, len(catalog)))
	for i := range catalog {
		if len(out) >= limit {
			break
		}
		if keep(&catalog[i]) {
			out = append(out, catalog[i])
		}
	}
	return out
}
