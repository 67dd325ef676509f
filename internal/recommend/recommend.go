// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

// Package-level rankings with the default configuration and no cache.
// They never log; nil inputs behave like empty ones.

// ContentRecommendations builds the profile of userID and ranks the catalog
// against it, excluding the user's own selections.
func ContentRecommendations(catalog []Item, history SelectionHistory, userID string) []Item {
	items, _ := defaultRanker(catalog, history).content(userID)
	return items
}

// CollaborativeRecommendations ranks items chosen by the users most similar
// to userID.
func CollaborativeRecommendations(catalog []Item, history SelectionHistory, userID string) []Item {
	r := defaultRanker(catalog, history)
	items, _ := collaborative(r.cfg, r.s, userID, func() []Item {
		content, _ := r.content(userID)
		return content
	})
	return items
}

// HybridRecommendations interleaves the content and collaborative rankings
// of userID. An empty userID yields trending and bestseller items.
func HybridRecommendations(catalog []Item, history SelectionHistory, userID string) []Item {
	r := defaultRanker(catalog, history)
	if userID == "" {
		return trendingOrBestsellers(catalog, r.cfg.Limits.MaxResults)
	}

	content, _ := r.content(userID)
	collab, _ := collaborative(r.cfg, r.s, userID, func() []Item { return content })
	return merge(content, collab, catalog, idSet(history[userID]), r.cfg.Limits.MaxResults)
}

// ranker pairs a configuration with one snapshot.
type ranker struct {
	cfg *Config
	s   *snapshot
}

func defaultRanker(catalog []Item, history SelectionHistory) ranker {
	return ranker{
		cfg: DefaultConfig(),
		s:   &snapshot{catalog: catalog, idx: indexCatalog(catalog), history: history},
	}
}

func (r ranker) content(userID string) ([]Item, bool) {
	return rankContent(r.cfg, r.s, buildProfile(r.s.idx, r.s.history[userID], userID), userID)
}

// rankContent ranks s.catalog against profile, excluding userID's own
// selections. The boolean reports an empty profile.
func rankContent(cfg *Config, s *snapshot, profile *PreferenceProfile, userID string) ([]Item, bool) {
	scored := scoreContent(cfg, s.catalog, profile, idSet(s.history[userID]))
	return truncate(itemsOf(scored), cfg.Limits.MaxResults), profile.IsEmpty()
}
