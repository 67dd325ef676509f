// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package catalog

import (
	"github.com/tomtom215/wishrank/internal/recommend"
)

const imageBase = "https://images.unsplash.com/"

// imageQuery is appended to every reference image URL.
const imageQuery = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=1170&q=80"

func images(photos ...string) []string {
	out := make([]string, len(photos))
	for i, p := range photos {
		out[i] = imageBase + p + imageQuery
	}
	return out
}

// Reference returns the eight-item reference product set, ids "1" to "8".
// Every call returns a fresh copy.
func Reference() []recommend.Item {
	return []recommend.Item{
		{
			ID:           "1",
			Name:         "Diamond Radiance Ring",
			Description:  "Exquisite 18K white gold ring featuring a brilliant-cut diamond center stone surrounded by a halo of smaller diamonds for maximum sparkle.",
			Price:        2999,
			Category:     "Rings",
			Type:         "Engagement Ring",
			Material:     "White Gold",
			Purity:       "18K",
			Gemstone:     "Diamond",
			Occasion:     "Wedding",
			Gender:       "Women",
			GoldWeight:   "4.5",
			DiamondCts:   "1.2",
			IsNew:        true,
			IsBestseller: true,
			IsTrending:   true,
			Tags:         []string{"Wedding", "Engagement", "Gift"},
			Images:       images("photo-1605100804763-247f67b3557e", "photo-1608042314453-ae338d80c427"),
		},
		{
			ID:           "2",
			Name:         "Sapphire Eternity Band",
			Description:  "Timeless 18K yellow gold eternity band set with vibrant blue sapphires, symbolizing endless love and devotion.",
			Price:        1850,
			Category:     "Rings",
			Type:         "Wedding Band",
			Material:     "Yellow Gold",
			Purity:       "18K",
			Gemstone:     "Sapphire",
			Occasion:     "Anniversary",
			Gender:       "Women",
			IsBestseller: true,
			Images:       images("photo-1605100804763-247f67b3557e", "photo-1608042314453-ae338d80c427"),
		},
		{
			ID:          "3",
			Name:        "Platinum Chain Necklace",
			Description: "Sophisticated platinum chain necklace with a sleek, minimalist design for everyday luxury.",
			Price:       1250,
			Category:    "Necklaces",
			Type:        "Pendent Necklace",
			Material:    "Platinum",
			Occasion:    "Daily",
			Gender:      "Unisex",
			IsNew:       true,
			IsTrending:  true,
			Images:      images("photo-1611652022419-a9419f74343d", "photo-1599643478518-a784e5dc4c8f"),
		},
		{
			ID:           "4",
			Name:         "Ruby Signature Bracelet",
			Description:  "Statement 22K gold bracelet featuring vibrant ruby gemstones in an artful arrangement, perfect for special occasions.",
			Price:        3200,
			Category:     "Bracelets",
			Type:         "Tennis Bracelet",
			Material:     "Gold",
			Purity:       "22K",
			Gemstone:     "Ruby",
			Occasion:     "Party",
			Gender:       "Women",
			IsBestseller: true,
			IsTrending:   true,
			Images:       images("photo-1611591437268-c96582786b12", "photo-1603974372039-adc49044b6bd"),
		},
		{
			ID:          "5",
			Name:        "Diamond Drop Earrings",
			Description: "Elegant white gold drop earrings featuring brilliant-cut diamonds that catch the light with every movement.",
			Price:       1700,
			Category:    "Earrings",
			Type:        "Drop Earrings",
			Material:    "White Gold",
			Purity:      "18K",
			Gemstone:    "Diamond",
			Occasion:    "Festive",
			Gender:      "Women",
			IsNew:       true,
			IsTrending:  true,
			Images:      images("photo-1589128777073-263566ae5e4d", "photo-1602173574767-37ac01994b2a"),
		},
		{
			ID:           "6",
			Name:         "Emerald Statement Ring",
			Description:  "Bold 18K rose gold ring featuring a striking emerald center stone surrounded by a halo of pavé diamonds.",
			Price:        2450,
			Category:     "Rings",
			Type:         "Cocktail Ring",
			Material:     "Rose Gold",
			Purity:       "18K",
			Gemstone:     "Emerald",
			Occasion:     "Party",
			Gender:       "Women",
			IsBestseller: true,
			Images:       images("photo-1608042314453-ae338d80c427", "photo-1605100804763-247f67b3557e"),
		},
		{
			ID:           "7",
			Name:         "Minimalist Pearl Necklace",
			Description:  "Refined 18K gold necklace featuring a single freshwater pearl pendant, perfect for everyday elegance.",
			Price:        950,
			Category:     "Necklaces",
			Type:         "Pendent Necklace",
			Material:     "Gold",
			Purity:       "18K",
			Gemstone:     "Pearl",
			Occasion:     "Daily",
			Gender:       "Women",
			IsNew:        true,
			IsBestseller: true,
			IsTrending:   true,
			Images:       images("photo-1599643478518-a784e5dc4c8f", "photo-1611652022419-a9419f74343d"),
		},
		{
			ID:          "8",
			Name:        "Classic Gold Cufflinks",
			Description: "Sophisticated 22K gold cufflinks with a polished finish, perfect for formal occasions.",
			Price:       850,
			Category:    "Brooches & Pins",
			Type:        "Refined Luxury",
			Material:    "Gold",
			Purity:      "22K",
			Occasion:    "Formal",
			Gender:      "Men",
			IsTrending:  true,
			Images:      images("photo-1572708609331-f373cs7e5548", "photo-1585216808530-05ebd678b58b"),
		},
	}
}
