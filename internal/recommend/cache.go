// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"
)

// profileCache holds built profiles keyed by a digest of everything a
// profile depends on. Entries are never mutated after insertion. A nil
// *profileCache is valid and always misses.
type profileCache struct {
	cache *ristretto.Cache[uint64, *PreferenceProfile]
	cfg   CacheConfig
}

// newProfileCache returns nil when caching is disabled.
//
//nolint:gocritic // CacheConfig is small
func newProfileCache(cfg CacheConfig) (*profileCache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	c, err := ristretto.NewCache(&ristretto.Config[uint64, *PreferenceProfile]{
		NumCounters: int64(cfg.MaxEntries) * 10,
		MaxCost:     int64(cfg.MaxEntries),
		BufferItems: 64,
		// Every entry costs 1 so MaxCost is an entry count.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create profile cache: %w", err)
	}

	return &profileCache{cache: c, cfg: cfg}, nil
}

func (c *profileCache) get(key uint64) (*PreferenceProfile, bool) {
	if c == nil {
		return nil, false
	}
	return c.cache.Get(key)
}

func (c *profileCache) set(key uint64, p *PreferenceProfile) {
	if c == nil {
		return
	}
	c.cache.SetWithTTL(key, p, 1, c.cfg.TTL)
}

// wait blocks until pending writes are applied.
func (c *profileCache) wait() {
	if c == nil {
		return
	}
	c.cache.Wait()
}

func (c *profileCache) clear() {
	if c == nil {
		return
	}
	c.cache.Clear()
}

func (c *profileCache) close() {
	if c == nil {
		return
	}
	c.cache.Close()
}

// catalogFingerprint digests the catalog fields a profile is built from.
// Two catalogs with the same fingerprint yield identical profiles for the
// same selections.
func catalogFingerprint(catalog []Item) uint64 {
	d := xxhash.New()
	var buf [8]byte

	for i := range catalog {
		item := &catalog[i]
		writeField(d, item.ID)
		for _, attr := range Attributes {
			writeField(d, item.Value(attr))
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(item.Price))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// profileKey digests a user id, that user's selections and a catalog
// fingerprint into a cache key.
func profileKey(fingerprint uint64, userID string, selections []string) uint64 {
	d := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], fingerprint)
	_, _ = d.Write(buf[:])
	writeField(d, userID)
	binary.LittleEndian.PutUint64(buf[:], uint64(len(selections)))
	_, _ = d.Write(buf[:])
	for _, id := range selections {
		writeField(d, id)
	}

	return d.Sum64()
}

// writeField writes s followed by a separator so adjacent fields cannot
// run together.
func writeField(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(s)
	_, _ = d.Write([]byte{0})
}
