// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

import (
	"fmt"
	"testing"
)

func TestMerge(t *testing.T) {
	item := func(id string) Item { return Item{ID: id} }

	tests := []struct {
		name          string
		content       []Item
		collaborative []Item
		catalog       []Item
		exclude       []string
		want          []string
	}{
		{
			name:          "interleaves and deduplicates",
			content:       []Item{item("A"), item("B"), item("C")},
			collaborative: []Item{item("B"), item("D"), item("E")},
			want:          []string{"A", "B", "D", "C", "E"},
		},
		{
			name:          "longer collaborative list",
			content:       []Item{item("A")},
			collaborative: []Item{item("B"), item("C"), item("D")},
			want:          []string{"A", "B", "C", "D"},
		},
		{
			name:    "both empty",
			catalog: nil,
			want:    []string{},
		},
		{
			name:    "trending backfill skips excluded ids",
			content: itemsByID("2"),
			catalog: testCatalog(),
			exclude: []string{"1"},
			want:    []string{"2", "3", "4", "5", "7", "8"},
		},
		{
			name:          "trending backfill skips emitted ids",
			content:       itemsByID("5"),
			collaborative: itemsByID("3"),
			catalog:       testCatalog(),
			want:          []string{"5", "3", "1", "4", "7", "8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.content, tt.collaborative, tt.catalog, tt.exclude)
			assertIDs(t, got, tt.want...)
		})
	}
}

func TestMerge_Truncates(t *testing.T) {
	var content, collab []Item
	for i := 0; i < 10; i++ {
		content = append(content, Item{ID: fmt.Sprintf("c%d", i)})
		collab = append(collab, Item{ID: fmt.Sprintf("k%d", i)})
	}

	got := Merge(content, collab, nil, nil)
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	if got[0].ID != "c0" || got[1].ID != "k0" || got[11].ID != "k5" {
		t.Errorf("unexpected order: %v", ids(got))
	}
}

func TestHybridRecommendations(t *testing.T) {
	catalog := testCatalog()

	t.Run("reference scenario", func(t *testing.T) {
		got := HybridRecommendations(catalog, testHistory(), "alice")
		assertIDs(t, got, "5", "6", "2", "7", "3", "8")
	})

	t.Run("no user returns trending or bestsellers", func(t *testing.T) {
		got := HybridRecommendations(catalog, testHistory(), "")
		assertIDs(t, got, "1", "2", "3", "4", "5", "6", "7", "8")
	})

	t.Run("unknown user gets full list", func(t *testing.T) {
		got := HybridRecommendations(catalog, SelectionHistory{}, "nobody")
		if len(got) != len(catalog) {
			t.Errorf("len = %d, want %d", len(got), len(catalog))
		}
	})
}
