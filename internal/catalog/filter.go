// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package catalog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/tomtom215/wishrank/internal/recommend"
)

// SortMode selects a browse view. Except for SortFeatured, every mode
// narrows the list to items carrying the matching flag.
type SortMode string

// Browse views.
const (
	SortFeatured    SortMode = "featured"
	SortNew         SortMode = "new"
	SortBestsellers SortMode = "bestsellers"
	SortTrending    SortMode = "trending"
)

// ParseSortMode maps a query value to a SortMode. The empty string is
// SortFeatured.
func ParseSortMode(s string) (SortMode, bool) {
	switch SortMode(s) {
	case "", SortFeatured:
		return SortFeatured, true
	case SortNew, SortBestsellers, SortTrending:
		return SortMode(s), true
	default:
		return "", false
	}
}

// Range is an inclusive numeric bound.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Filter narrows a catalog for browsing. Empty lists and nil ranges do not
// filter. A non-empty list keeps items whose value is any of its entries.
type Filter struct {
	Categories []string `json:"categories,omitempty"`
	Types      []string `json:"types,omitempty"`
	Materials  []string `json:"materials,omitempty"`
	Purities   []string `json:"purities,omitempty"`
	Gemstones  []string `json:"gemstones,omitempty"`
	Genders    []string `json:"genders,omitempty"`

	// Occasions match when the item's occasion contains any entry.
	Occasions []string `json:"occasions,omitempty"`

	// Tags match when the item carries any entry.
	Tags []string `json:"tags,omitempty"`

	Price *Range `json:"price,omitempty"`

	// GoldWeight and DiamondCts skip items that do not state a value.
	GoldWeight *Range `json:"gold_weight,omitempty"`
	DiamondCts *Range `json:"diamond_cts,omitempty"`

	Sort SortMode `json:"sort,omitempty"`
}

// Apply returns the items of catalog that pass f, in catalog order.
//
//nolint:gocritic // Filter is passed by value so callers can reuse it
func Apply(catalog []recommend.Item, f Filter) []recommend.Item {
	out := make([]recommend.Item, 0, len(catalog))
	for i := range catalog {
		if f.matches(&catalog[i]) {
			out = append(out, catalog[i])
		}
	}
	return out
}

//nolint:gocritic,gocyclo // one branch per filter field
func (f Filter) matches(it *recommend.Item) bool {
	if !anyOf(f.Categories, it.Category) ||
		!anyOf(f.Types, it.Type) ||
		!anyOf(f.Materials, it.Material) ||
		!anyOf(f.Genders, it.Gender) {
		return false
	}

	// Optional attributes never match a non-empty filter when unset.
	if len(f.Purities) > 0 && (it.Purity == "" || !slices.Contains(f.Purities, it.Purity)) {
		return false
	}
	if len(f.Gemstones) > 0 && (it.Gemstone == "" || !slices.Contains(f.Gemstones, it.Gemstone)) {
		return false
	}
	if len(f.Occasions) > 0 && !occasionMatches(f.Occasions, it.Occasion) {
		return false
	}
	if len(f.Tags) > 0 && !slices.ContainsFunc(f.Tags, func(t string) bool { return slices.Contains(it.Tags, t) }) {
		return false
	}

	if f.Price != nil && !f.Price.contains(it.Price) {
		return false
	}
	if !measureMatches(f.GoldWeight, it.GoldWeight) || !measureMatches(f.DiamondCts, it.DiamondCts) {
		return false
	}

	switch f.Sort {
	case SortNew:
		return it.IsNew
	case SortBestsellers:
		return it.IsBestseller
	case SortTrending:
		return it.IsTrending
	default:
		return true
	}
}

func anyOf(set []string, v string) bool {
	return len(set) == 0 || slices.Contains(set, v)
}

func occasionMatches(occasions []string, occasion string) bool {
	if occasion == "" {
		return false
	}
	for _, o := range occasions {
		if strings.Contains(occasion, o) {
			return true
		}
	}
	return false
}

// measureMatches applies r to a free-text numeric field. Items without a
// value pass; unparsable values fail.
func measureMatches(r *Range, value string) bool {
	if r == nil || value == "" {
		return true
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	return r.contains(v)
}
