// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

import (
	"testing"
	"time"
)

func TestCatalogFingerprint(t *testing.T) {
	base := catalogFingerprint(testCatalog())

	if got := catalogFingerprint(testCatalog()); got != base {
		t.Error("fingerprint not stable for identical catalogs")
	}

	tests := []struct {
		name   string
		mutate func([]Item) []Item
	}{
		{"price change", func(c []Item) []Item { c[0].Price++; return c }},
		{"attribute change", func(c []Item) []Item { c[3].Gemstone = "Topaz"; return c }},
		{"reordered", func(c []Item) []Item { c[0], c[1] = c[1], c[0]; return c }},
		{"item removed", func(c []Item) []Item { return c[1:] }},
		{"field boundary moved", func(c []Item) []Item { c[0].Category, c[0].Type = "RingsE", "ngagement Ring"; return c }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalogFingerprint(tt.mutate(testCatalog())); got == base {
				t.Error("fingerprint unchanged")
			}
		})
	}

	t.Run("descriptive fields are ignored", func(t *testing.T) {
		c := testCatalog()
		c[0].Name = "Renamed"
		c[0].IsTrending = false
		if catalogFingerprint(c) != base {
			t.Error("fingerprint depends on fields profiles do not use")
		}
	})
}

func TestProfileKey(t *testing.T) {
	key := profileKey(1, "alice", []string{"1", "4"})

	tests := []struct {
		name        string
		fingerprint uint64
		user        string
		selections  []string
	}{
		{"other catalog", 2, "alice", []string{"1", "4"}},
		{"other user", 1, "bob", []string{"1", "4"}},
		{"other order", 1, "alice", []string{"4", "1"}},
		{"extra selection", 1, "alice", []string{"1", "4", "4"}},
		{"joined ids", 1, "alice", []string{"14"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if profileKey(tt.fingerprint, tt.user, tt.selections) == key {
				t.Error("key collision")
			}
		})
	}

	if profileKey(1, "alice", []string{"1", "4"}) != key {
		t.Error("key not stable")
	}
}

func TestProfileCache(t *testing.T) {
	t.Run("disabled is nil and always misses", func(t *testing.T) {
		c, err := newProfileCache(CacheConfig{Enabled: false})
		if err != nil {
			t.Fatalf("newProfileCache() error = %v", err)
		}
		if c != nil {
			t.Fatal("expected nil cache when disabled")
		}
		c.set(1, newProfile("alice"))
		c.wait()
		if _, ok := c.get(1); ok {
			t.Error("nil cache reported a hit")
		}
		c.clear()
		c.close()
	})

	t.Run("stores and clears", func(t *testing.T) {
		c, err := newProfileCache(CacheConfig{Enabled: true, TTL: time.Minute, MaxEntries: 100})
		if err != nil {
			t.Fatalf("newProfileCache() error = %v", err)
		}
		defer c.close()

		p := newProfile("alice")
		c.set(42, p)
		c.wait()

		got, ok := c.get(42)
		if !ok || got != p {
			t.Fatalf("get(42) = %v, %v; want stored profile", got, ok)
		}

		c.clear()
		if _, ok := c.get(42); ok {
			t.Error("hit after clear")
		}
	})
}
