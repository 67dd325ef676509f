// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

// Item is a catalog entry. Only the categorical attributes, the price and
// the three flags take part in ranking; the remaining fields are carried
// through for callers that render the result.
type Item struct {
	// ID is the unique item identifier within a catalog snapshot.
	ID string `json:"id" validate:"required,itemid"`

	// Name is the display name.
	Name string `json:"name" validate:"required"`

	// Description is the marketing copy.
	Description string `json:"description" validate:"required"`

	// Price is the list price. Never negative.
	Price float64 `json:"price" validate:"gte=0"`

	// Category groups items (Rings, Necklaces, ...).
	Category string `json:"category" validate:"required"`

	// Type is the sub-category (Engagement Ring, Drop Earrings, ...).
	Type string `json:"type" validate:"required"`

	// Material is the base metal (White Gold, Platinum, ...).
	Material string `json:"material" validate:"required"`

	// Purity is the metal purity (18K, 22K). Optional.
	Purity string `json:"purity,omitempty"`

	// Gemstone is the principal stone. Optional.
	Gemstone string `json:"gemstone,omitempty"`

	// Occasion is the intended occasion. Optional.
	Occasion string `json:"occasion,omitempty"`

	// Gender is the target audience (Women, Men, Unisex, Kids).
	Gender string `json:"gender" validate:"required"`

	// GoldWeight is the gold weight in grams, as supplied.
	GoldWeight string `json:"gold_weight,omitempty"`

	// DiamondCts is the diamond carat weight, as supplied.
	DiamondCts string `json:"diamond_cts,omitempty"`

	IsNew        bool `json:"is_new"`
	IsBestseller bool `json:"is_bestseller"`
	IsTrending   bool `json:"is_trending"`

	// Images holds image URLs; the first one is the cover.
	Images []string `json:"images" validate:"min=1,dive,required"`

	// Tags are free-form labels used for browsing.
	Tags []string `json:"tags,omitempty"`
}

// SelectionHistory maps a user identifier to the ordered item ids that user
// has wishlisted. Ids may reference items no longer in the catalog.
type SelectionHistory map[string][]string

// Attribute names one of the seven categorical item attributes.
type Attribute string

// Categorical attributes tracked by a PreferenceProfile.
const (
	AttrCategory Attribute = "category"
	AttrType     Attribute = "type"
	AttrMaterial Attribute = "material"
	AttrGemstone Attribute = "gemstone"
	AttrOccasion Attribute = "occasion"
	AttrPurity   Attribute = "purity"
	AttrGender   Attribute = "gender"
)

// Attributes lists every categorical attribute in a fixed order.
var Attributes = []Attribute{
	AttrCategory, AttrType, AttrMaterial, AttrGemstone, AttrOccasion, AttrPurity, AttrGender,
}

// Value returns the item's value for the attribute, or "" when unset.
func (it *Item) Value(attr Attribute) string {
	switch attr {
	case AttrCategory:
		return it.Category
	case AttrType:
		return it.Type
	case AttrMaterial:
		return it.Material
	case AttrGemstone:
		return it.Gemstone
	case AttrOccasion:
		return it.Occasion
	case AttrPurity:
		return it.Purity
	case AttrGender:
		return it.Gender
	default:
		return ""
	}
}

// PriceRange is the band of prices observed over a user's selections.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Width returns Max - Min.
func (p PriceRange) Width() float64 {
	return p.Max - p.Min
}

// Midpoint returns the centre of the band.
func (p PriceRange) Midpoint() float64 {
	return p.Min + p.Width()/2
}

// PreferenceProfile is the per-user frequency model derived from a
// selection history. It only lives for the duration of one ranking call.
type PreferenceProfile struct {
	// UserID is the user the profile was built for.
	UserID string `json:"user_id"`

	// Frequencies maps each attribute to value -> number of selected items
	// carrying that value.
	Frequencies map[Attribute]map[string]int `json:"frequencies"`

	// PriceRange is the observed price band; {0,0} without selections.
	PriceRange PriceRange `json:"price_range"`

	// Selections is the number of history entries that resolved to a
	// catalog item.
	Selections int `json:"selections"`
}

// newProfile returns a profile with all seven maps allocated.
func newProfile(userID string) *PreferenceProfile {
	freq := make(map[Attribute]map[string]int, len(Attributes))
	for _, attr := range Attributes {
		freq[attr] = make(map[string]int)
	}
	return &PreferenceProfile{UserID: userID, Frequencies: freq}
}

// Count returns how many selected items carried value for attr.
func (p *PreferenceProfile) Count(attr Attribute, value string) int {
	if p == nil || value == "" {
		return 0
	}
	return p.Frequencies[attr][value]
}

// IsEmpty reports whether no selection resolved against the catalog.
func (p *PreferenceProfile) IsEmpty() bool {
	return p == nil || p.Selections == 0
}

// Clone returns a deep copy.
func (p *PreferenceProfile) Clone() *PreferenceProfile {
	if p == nil {
		return nil
	}
	c := newProfile(p.UserID)
	for attr, values := range p.Frequencies {
		m := make(map[string]int, len(values))
		for v, n := range values {
			m[v] = n
		}
		c.Frequencies[attr] = m
	}
	c.PriceRange = p.PriceRange
	c.Selections = p.Selections
	return c
}

// ScoredItem pairs an item with its content score.
type ScoredItem struct {
	Item  Item    `json:"item"`
	Score float64 `json:"score"`

	// Breakdown holds the per-term contributions ("category", "trending",
	// "price", ...). Terms that contributed nothing are omitted.
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
}

// Strategy selects which ranking to produce.
type Strategy string

// Ranking strategies.
const (
	StrategyContent       Strategy = "content"
	StrategyCollaborative Strategy = "collaborative"
	StrategyHybrid        Strategy = "hybrid"
)

// ParseStrategy maps a user-supplied name to a Strategy.
func ParseStrategy(s string) (Strategy, bool) {
	switch Strategy(s) {
	case StrategyContent, StrategyCollaborative, StrategyHybrid:
		return Strategy(s), true
	default:
		return "", false
	}
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	return string(s)
}

// Neighbor is another user ranked by selection-set similarity.
type Neighbor struct {
	UserID     string  `json:"user_id"`
	Similarity float64 `json:"similarity"`
}

// ids returns the item ids of items in order.
func ids(items []Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

// catalogIndex maps item id to its position in the catalog slice.
type catalogIndex struct {
	items []Item
	pos   map[string]int
}

// indexCatalog builds a lookup over catalog. When ids repeat, the first
// occurrence wins.
func indexCatalog(catalog []Item) *catalogIndex {
	pos := make(map[string]int, len(catalog))
	for i := range catalog {
		if _, dup := pos[catalog[i].ID]; !dup {
			pos[catalog[i].ID] = i
		}
	}
	return &catalogIndex{items: catalog, pos: pos}
}

// lookup returns the item with the given id.
func (c *catalogIndex) lookup(id string) (*Item, bool) {
	i, ok := c.pos[id]
	if !ok {
		return nil, false
	}
	return &c.items[i], true
}

// idSet converts a list of ids to a set.
func idSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, id := range list {
		set[id] = struct{}{}
	}
	return set
}
