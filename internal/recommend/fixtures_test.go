// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

import (
	"io"
	"slices"
	"testing"

	"github.com/rs/zerolog"
)

// testCatalog mirrors the eight-item reference product set.
func testCatalog() []Item {
	img := []string{"https://example.com/item.jpg"}
	return []Item{
		{ID: "1", Name: "Diamond Radiance Ring", Price: 2999, Category: "Rings", Type: "Engagement Ring", Material: "White Gold", Purity: "18K", Gemstone: "Diamond", Occasion: "Wedding", Gender: "Women", IsNew: true, IsBestseller: true, IsTrending: true, Images: img},
		{ID: "2", Name: "Sapphire Eternity Band", Price: 1850, Category: "Rings", Type: "Wedding Band", Material: "Yellow Gold", Purity: "18K", Gemstone: "Sapphire", Occasion: "Anniversary", Gender: "Women", IsBestseller: true, Images: img},
		{ID: "3", Name: "Platinum Chain Necklace", Price: 1250, Category: "Necklaces", Type: "Pendent Necklace", Material: "Platinum", Occasion: "Daily", Gender: "Unisex", IsNew: true, IsTrending: true, Images: img},
		{ID: "4", Name: "Ruby Signature Bracelet", Price: 3200, Category: "Bracelets", Type: "Tennis Bracelet", Material: "Gold", Purity: "22K", Gemstone: "Ruby", Occasion: "Party", Gender: "Women", IsBestseller: true, IsTrending: true, Images: img},
		{ID: "5", Name: "Diamond Drop Earrings", Price: 1700, Category: "Earrings", Type: "Drop Earrings", Material: "White Gold", Purity: "18K", Gemstone: "Diamond", Occasion: "Festive", Gender: "Women", IsNew: true, IsTrending: true, Images: img},
		{ID: "6", Name: "Emerald Statement Ring", Price: 2450, Category: "Rings", Type: "Cocktail Ring", Material: "Rose Gold", Purity: "18K", Gemstone: "Emerald", Occasion: "Party", Gender: "Women", IsBestseller: true, Images: img},
		{ID: "7", Name: "Minimalist Pearl Necklace", Price: 950, Category: "Necklaces", Type: "Pendent Necklace", Material: "Gold", Purity: "18K", Gemstone: "Pearl", Occasion: "Daily", Gender: "Women", IsNew: true, IsBestseller: true, IsTrending: true, Images: img},
		{ID: "8", Name: "Classic Gold Cufflinks", Price: 850, Category: "Brooches & Pins", Type: "Refined Luxury", Material: "Gold", Purity: "22K", Occasion: "Formal", Gender: "Men", IsTrending: true, Images: img},
	}
}

// testHistory is the shared wishlist scenario.
func testHistory() SelectionHistory {
	return SelectionHistory{
		"alice": {"1", "4"},
		"bob":   {"1", "2", "3"},
		"carol": {"4", "5"},
		"dave":  {},
	}
}

// newTestEngine returns an engine with caching disabled and a silent logger.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	e, err := NewEngine(cfg, zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

// assertIDs fails unless items carry exactly the ids in want, in order.
func assertIDs(t *testing.T, items []Item, want ...string) {
	t.Helper()
	got := ids(items)
	if !slices.Equal(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
}

// itemsByID picks items out of the test catalog.
func itemsByID(idList ...string) []Item {
	idx := indexCatalog(testCatalog())
	out := make([]Item, 0, len(idList))
	for _, id := range idList {
		if it, ok := idx.lookup(id); ok {
			out = append(out, *it)
		} else {
			out = append(out, Item{ID: id})
		}
	}
	return out
}
