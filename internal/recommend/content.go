// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

import (
	"math"
	"sort"
)

// ScoreContent ranks catalog against profile with the default weights and
// returns at most 12 items. Items whose id is in excludeIDs never appear.
// Equal scores keep catalog order.
func ScoreContent(catalog []Item, profile *PreferenceProfile, excludeIDs []string) []Item {
	cfg := DefaultConfig()
	scored := scoreContent(cfg, catalog, profile, idSet(excludeIDs))
	return truncate(itemsOf(scored), cfg.Limits.MaxResults)
}

// scoreContent scores every non-excluded item and sorts the result by
// descending score. The returned slice is not truncated.
func scoreContent(cfg *Config, catalog []Item, profile *PreferenceProfile, exclude map[string]struct{}) []ScoredItem {
	scored := make([]ScoredItem, 0, len(catalog))
	for i := range catalog {
		if _, skip := exclude[catalog[i].ID]; skip {
			continue
		}
		scored = append(scored, scoreItem(cfg, &catalog[i], profile))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// scoreItem computes the weighted attribute matches, flag boosts and price
// proximity for one item.
func scoreItem(cfg *Config, item *Item, profile *PreferenceProfile) ScoredItem {
	breakdown := make(map[string]float64)
	var score float64

	add := func(term string, v float64) {
		if v == 0 {
			return
		}
		breakdown[term] += v
		score += v
	}

	for _, attr := range Attributes {
		count := profile.Count(attr, item.Value(attr))
		add(string(attr), cfg.Weights.For(attr)*float64(count))
	}

	if item.IsTrending {
		add("trending", cfg.Boosts.Trending)
	}
	if item.IsBestseller {
		add("bestseller", cfg.Boosts.Bestseller)
	}
	if item.IsNew {
		add("new", cfg.Boosts.New)
	}

	add("price", cfg.PriceWeight*priceProximity(item.Price, profile))

	return ScoredItem{Item: *item, Score: score, Breakdown: breakdown}
}

// priceProximity is 1 at the centre of the profile's price band, falling
// linearly to 0 at half a band-width away or further. A band of zero width
// yields 0.
func priceProximity(price float64, profile *PreferenceProfile) float64 {
	if profile == nil {
		return 0
	}
	width := profile.PriceRange.Width()
	if width <= 0 {
		return 0
	}
	distance := math.Abs(price-profile.PriceRange.Midpoint()) / width
	return 1 - math.Min(distance, 1)
}

// itemsOf strips the scores.
func itemsOf(scored []ScoredItem) []Item {
	out := make([]Item, len(scored))
	for i := range scored {
		out[i] = scored[i].Item
	}
	return out
}

// truncate returns the first n entries of s.
func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
