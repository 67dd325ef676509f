// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

// BuildProfile derives the preference profile of userID from history.
//
// A user absent from history, or whose selections all point at items that
// are no longer in catalog, gets an empty profile with a {0,0} price range.
// Selecting the same id twice counts it twice.
func BuildProfile(history SelectionHistory, catalog []Item, userID string) *PreferenceProfile {
	return buildProfile(indexCatalog(catalog), history[userID], userID)
}

// buildProfile accumulates attribute counts and the price band over the
// selections that resolve in idx.
func buildProfile(idx *catalogIndex, selections []string, userID string) *PreferenceProfile {
	p := newProfile(userID)

	for _, id := range selections {
		item, ok := idx.lookup(id)
		if !ok {
			continue
		}

		for _, attr := range Attributes {
			if v := item.Value(attr); v != "" {
				p.Frequencies[attr][v]++
			}
		}

		if p.Selections == 0 {
			p.PriceRange = PriceRange{Min: item.Price, Max: item.Price}
		} else {
			p.PriceRange.Min = min(p.PriceRange.Min, item.Price)
			p.PriceRange.Max = max(p.PriceRange.Max, item.Price)
		}
		p.Selections++
	}

	return p
}
