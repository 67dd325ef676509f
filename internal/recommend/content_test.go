// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

import (
	"fmt"
	"math"
	"testing"
)

func TestScoreContent(t *testing.T) {
	catalog := testCatalog()
	history := testHistory()

	t.Run("ranks by weighted matches", func(t *testing.T) {
		profile := BuildProfile(history, catalog, "alice")
		got := ScoreContent(catalog, profile, history["alice"])
		assertIDs(t, got, "5", "6", "7", "2", "8", "3")
	})

	t.Run("never returns excluded items", func(t *testing.T) {
		profile := BuildProfile(history, catalog, "alice")
		for _, it := range ScoreContent(catalog, profile, []string{"1", "4", "5"}) {
			if it.ID == "1" || it.ID == "4" || it.ID == "5" {
				t.Errorf("excluded item %s returned", it.ID)
			}
		}
	})

	t.Run("empty profile ranks by boosts with catalog order ties", func(t *testing.T) {
		got := ScoreContent(catalog, BuildProfile(nil, catalog, "nobody"), nil)
		assertIDs(t, got, "1", "7", "4", "3", "5", "8", "2", "6")
	})

	t.Run("truncates to twelve", func(t *testing.T) {
		var big []Item
		for i := 0; i < 30; i++ {
			big = append(big, Item{ID: fmt.Sprintf("x%d", i), Category: "Rings", Gender: "Women"})
		}
		if got := ScoreContent(big, nil, nil); len(got) != 12 {
			t.Errorf("len = %d, want 12", len(got))
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		if got := ScoreContent([]Item{}, nil, nil); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}

func TestScoreItem(t *testing.T) {
	catalog := testCatalog()
	cfg := DefaultConfig()
	profile := BuildProfile(testHistory(), catalog, "alice")

	tests := []struct {
		id   string
		want float64
	}{
		{"5", 9.3},
		{"6", 8.0},
		{"7", 6.8},
		{"2", 6.5},
		{"8", 4.0},
		{"3", 1.3},
	}

	idx := indexCatalog(catalog)
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			item, _ := idx.lookup(tt.id)
			got := scoreItem(cfg, item, profile)
			if math.Abs(got.Score-tt.want) > 1e-9 {
				t.Errorf("score(%s) = %v, want %v", tt.id, got.Score, tt.want)
			}

			var sum float64
			for _, v := range got.Breakdown {
				sum += v
			}
			if math.Abs(sum-got.Score) > 1e-9 {
				t.Errorf("breakdown sums to %v, score is %v", sum, got.Score)
			}
		})
	}
}

func TestPriceProximity(t *testing.T) {
	band := &PreferenceProfile{PriceRange: PriceRange{Min: 1000, Max: 3000}}

	tests := []struct {
		name    string
		profile *PreferenceProfile
		price   float64
		want    float64
	}{
		{"at midpoint", band, 2000, 1},
		{"quarter width away", band, 2500, 0.75},
		{"at band edge", band, 3000, 0.5},
		{"far away clamps to zero", band, 9000, 0},
		{"zero width", &PreferenceProfile{PriceRange: PriceRange{Min: 950, Max: 950}}, 950, 0},
		{"empty profile", &PreferenceProfile{}, 500, 0},
		{"nil profile", nil, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := priceProximity(tt.price, tt.profile)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("priceProximity = %v, want finite", got)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("priceProximity(%v) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}

func TestScoreContent_SingleSelectionIsFinite(t *testing.T) {
	catalog := testCatalog()
	cfg := DefaultConfig()
	profile := BuildProfile(SelectionHistory{"u": {"7"}}, catalog, "u")

	for _, s := range scoreContent(cfg, catalog, profile, nil) {
		if math.IsNaN(s.Score) || math.IsInf(s.Score, 0) {
			t.Errorf("score(%s) = %v, want finite", s.Item.ID, s.Score)
		}
		if _, ok := s.Breakdown["price"]; ok {
			t.Errorf("item %s has a price term with a zero-width band", s.Item.ID)
		}
	}
}
