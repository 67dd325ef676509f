// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

import (
	"testing"
)

func TestBuildProfile(t *testing.T) {
	catalog := testCatalog()

	t.Run("counts every non-empty attribute", func(t *testing.T) {
		p := BuildProfile(testHistory(), catalog, "alice")

		checks := []struct {
			attr  Attribute
			value string
			want  int
		}{
			{AttrCategory, "Rings", 1},
			{AttrCategory, "Bracelets", 1},
			{AttrGemstone, "Diamond", 1},
			{AttrMaterial, "Gold", 1},
			{AttrPurity, "22K", 1},
			{AttrGender, "Women", 2},
			{AttrCategory, "Necklaces", 0},
		}
		for _, c := range checks {
			if got := p.Count(c.attr, c.value); got != c.want {
				t.Errorf("Count(%s, %q) = %d, want %d", c.attr, c.value, got, c.want)
			}
		}

		if p.PriceRange != (PriceRange{Min: 2999, Max: 3200}) {
			t.Errorf("PriceRange = %+v, want {2999 3200}", p.PriceRange)
		}
		if p.Selections != 2 {
			t.Errorf("Selections = %d, want 2", p.Selections)
		}
	})

	t.Run("skips empty optional attributes", func(t *testing.T) {
		p := BuildProfile(SelectionHistory{"u": {"3"}}, catalog, "u")
		if len(p.Frequencies[AttrGemstone]) != 0 {
			t.Errorf("gemstone counts = %v, want none", p.Frequencies[AttrGemstone])
		}
		if len(p.Frequencies[AttrPurity]) != 0 {
			t.Errorf("purity counts = %v, want none", p.Frequencies[AttrPurity])
		}
	})

	t.Run("unknown user yields empty profile", func(t *testing.T) {
		p := BuildProfile(testHistory(), catalog, "nobody")
		if !p.IsEmpty() {
			t.Errorf("IsEmpty() = false, want true")
		}
		if p.PriceRange != (PriceRange{}) {
			t.Errorf("PriceRange = %+v, want zero", p.PriceRange)
		}
		for _, attr := range Attributes {
			if p.Frequencies[attr] == nil {
				t.Errorf("Frequencies[%s] is nil, want allocated map", attr)
			}
		}
	})

	t.Run("stale ids collapse price range to zero", func(t *testing.T) {
		p := BuildProfile(SelectionHistory{"u": {"gone", "also-gone"}}, catalog, "u")
		if p.PriceRange != (PriceRange{}) {
			t.Errorf("PriceRange = %+v, want zero", p.PriceRange)
		}
		if !p.IsEmpty() {
			t.Error("profile with only stale ids should be empty")
		}
	})

	t.Run("stale ids are skipped among valid ones", func(t *testing.T) {
		p := BuildProfile(SelectionHistory{"u": {"gone", "7"}}, catalog, "u")
		if p.Selections != 1 {
			t.Errorf("Selections = %d, want 1", p.Selections)
		}
		if p.PriceRange != (PriceRange{Min: 950, Max: 950}) {
			t.Errorf("PriceRange = %+v, want {950 950}", p.PriceRange)
		}
	})

	t.Run("duplicate selections count per occurrence", func(t *testing.T) {
		p := BuildProfile(SelectionHistory{"u": {"2", "2"}}, catalog, "u")
		if got := p.Count(AttrCategory, "Rings"); got != 2 {
			t.Errorf("Count(category, Rings) = %d, want 2", got)
		}
	})
}

func TestPreferenceProfile_Clone(t *testing.T) {
	p := BuildProfile(testHistory(), testCatalog(), "alice")
	c := p.Clone()

	c.Frequencies[AttrCategory]["Rings"] = 99
	c.PriceRange.Max = 0

	if p.Count(AttrCategory, "Rings") != 1 {
		t.Error("modifying clone changed original frequencies")
	}
	if p.PriceRange.Max != 3200 {
		t.Error("modifying clone changed original price range")
	}

	var nilProfile *PreferenceProfile
	if nilProfile.Clone() != nil {
		t.Error("Clone of nil profile should be nil")
	}
}

func TestPriceRange(t *testing.T) {
	r := PriceRange{Min: 1000, Max: 3000}
	if r.Width() != 2000 {
		t.Errorf("Width() = %v, want 2000", r.Width())
	}
	if r.Midpoint() != 2000 {
		t.Errorf("Midpoint() = %v, want 2000", r.Midpoint())
	}
}
