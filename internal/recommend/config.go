// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Config contains all tunables for the recommendation engine.
type Config struct {
	// Weights are the per-attribute multipliers applied to profile counts.
	Weights AttributeWeights `json:"weights" koanf:"weights"`

	// Boosts are the flat bonuses for item flags.
	Boosts FlagBoosts `json:"boosts" koanf:"boosts"`

	// PriceWeight scales the price-proximity term.
	// Default: 1.5.
	PriceWeight float64 `json:"price_weight" koanf:"price_weight"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`

	// Cache contains profile cache parameters.
	Cache CacheConfig `json:"cache" koanf:"cache"`
}

// AttributeWeights defines how much one matching selection of each
// categorical attribute contributes to an item's content score.
type AttributeWeights struct {
	Category float64 `json:"category" koanf:"category"`
	Gemstone float64 `json:"gemstone" koanf:"gemstone"`
	Type     float64 `json:"type" koanf:"type"`
	Material float64 `json:"material" koanf:"material"`
	Occasion float64 `json:"occasion" koanf:"occasion"`
	Purity   float64 `json:"purity" koanf:"purity"`
	Gender   float64 `json:"gender" koanf:"gender"`
}

// For returns the weight of attr.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w AttributeWeights) For(attr Attribute) float64 {
	switch attr {
	case AttrCategory:
		return w.Category
	case AttrGemstone:
		return w.Gemstone
	case AttrType:
		return w.Type
	case AttrMaterial:
		return w.Material
	case AttrOccasion:
		return w.Occasion
	case AttrPurity:
		return w.Purity
	case AttrGender:
		return w.Gender
	default:
		return 0
	}
}

// ToMap returns the weights keyed by attribute name.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w AttributeWeights) ToMap() map[string]float64 {
	m := make(map[string]float64, len(Attributes))
	for _, attr := range Attributes {
		m[string(attr)] = w.For(attr)
	}
	return m
}

// FlagBoosts are added once per item when the flag is set.
type FlagBoosts struct {
	Trending   float64 `json:"trending" koanf:"trending"`
	Bestseller float64 `json:"bestseller" koanf:"bestseller"`
	New        float64 `json:"new" koanf:"new"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// MaxResults caps every ranked list.
	// Default: 12.
	MaxResults int `json:"max_results" koanf:"max_results"`

	// CollaborativeMinResults is the size below which collaborative
	// output is backfilled from content scoring.
	// Default: 8.
	CollaborativeMinResults int `json:"collaborative_min_results" koanf:"collaborative_min_results"`

	// SimilarUsers is how many nearest neighbours feed collaborative
	// filtering.
	// Default: 3.
	SimilarUsers int `json:"similar_users" koanf:"similar_users"`

	// MaxUsers bounds how many other users the collaborative filter scans.
	// Zero means no bound.
	MaxUsers int `json:"max_users" koanf:"max_users"`

	// BatchConcurrency is the number of users ranked in parallel by
	// RecommendBatch.
	// Default: 4.
	BatchConcurrency int `json:"batch_concurrency" koanf:"batch_concurrency"`

	// MaxBatchUsers is the largest batch accepted by RecommendBatch.
	// Default: 100.
	MaxBatchUsers int `json:"max_batch_users" koanf:"max_batch_users"`
}

// CacheConfig contains profile cache parameters.
type CacheConfig struct {
	// Enabled controls whether profiles are cached.
	// Default: true.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl" koanf:"ttl"`

	// MaxEntries is the maximum number of cached profiles.
	// Default: 10000.
	MaxEntries int `json:"max_entries" koanf:"max_entries"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: AttributeWeights{
			Category: 3,
			Gemstone: 3,
			Type:     2,
			Material: 2,
			Occasion: 1.5,
			Purity:   1,
			Gender:   1,
		},
		Boosts: FlagBoosts{
			Trending:   1.0,
			Bestseller: 0.5,
			New:        0.3,
		},
		PriceWeight: 1.5,
		Limits: LimitsConfig{
			MaxResults:              12,
			CollaborativeMinResults: 8,
			SimilarUsers:            3,
			MaxUsers:                0,
			BatchConcurrency:        4,
			MaxBatchUsers:           100,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	for name, w := range c.Weights.ToMap() {
		if w < 0 {
			return fmt.Errorf("weights.%s must be non-negative, got %f", name, w)
		}
	}
	if c.Boosts.Trending < 0 || c.Boosts.Bestseller < 0 || c.Boosts.New < 0 {
		return fmt.Errorf("boosts must be non-negative, got %+v", c.Boosts)
	}
	if c.PriceWeight < 0 {
		return fmt.Errorf("price_weight must be non-negative, got %f", c.PriceWeight)
	}

	if c.Limits.MaxResults < 1 {
		return fmt.Errorf("limits.max_results must be positive, got %d", c.Limits.MaxResults)
	}
	if c.Limits.CollaborativeMinResults < 0 || c.Limits.CollaborativeMinResults > c.Limits.MaxResults {
		return fmt.Errorf("limits.collaborative_min_results must be in [0, %d], got %d",
			c.Limits.MaxResults, c.Limits.CollaborativeMinResults)
	}
	if c.Limits.SimilarUsers < 1 {
		return fmt.Errorf("limits.similar_users must be positive, got %d", c.Limits.SimilarUsers)
	}
	if c.Limits.MaxUsers < 0 {
		return fmt.Errorf("limits.max_users must be non-negative, got %d", c.Limits.MaxUsers)
	}
	if c.Limits.BatchConcurrency < 1 {
		return fmt.Errorf("limits.batch_concurrency must be positive, got %d", c.Limits.BatchConcurrency)
	}
	if c.Limits.MaxBatchUsers < 1 {
		return fmt.Errorf("limits.max_batch_users must be positive, got %d", c.Limits.MaxBatchUsers)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs hold value types only.
	return &Config{
		Weights:     c.Weights,
		Boosts:      c.Boosts,
		PriceWeight: c.PriceWeight,
		Limits:      c.Limits,
		Cache:       c.Cache,
	}
}

// MarshalJSON renders the cache TTL as a duration string.
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	type cacheJSON struct {
		Enabled    bool   `json:"enabled"`
		TTL        string `json:"ttl"`
		MaxEntries int    `json:"max_entries"`
	}
	return json.Marshal(&struct {
		*Alias
		Cache cacheJSON `json:"cache"`
	}{
		Alias: (*Alias)(c),
		Cache: cacheJSON{
			Enabled:    c.Cache.Enabled,
			TTL:        c.Cache.TTL.String(),
			MaxEntries: c.Cache.MaxEntries,
		},
	})
}
