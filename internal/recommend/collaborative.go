// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

import (
	"sort"
)

// JaccardSimilarity returns |A ∩ B| / |A ∪ B| over the distinct ids of a
// and b. Two empty lists have similarity 0.
func JaccardSimilarity(a, b []string) float64 {
	return jaccard(idSet(a), idSet(b))
}

// jaccard computes the Jaccard coefficient of two sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	// Iterate the smaller set
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for id := range small {
		if _, ok := large[id]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// neighbors ranks every other user with a non-empty selection list by
// Jaccard similarity to target, most similar first. Equal similarities are
// ordered by user id. maxUsers > 0 bounds how many candidates are scanned,
// taken in user id order.
func neighbors(history SelectionHistory, userID string, target map[string]struct{}, maxUsers int) []Neighbor {
	others := make([]string, 0, len(history))
	for other, selections := range history {
		if other == userID || len(selections) == 0 {
			continue
		}
		others = append(others, other)
	}
	sort.Strings(others)
	if maxUsers > 0 {
		others = truncate(others, maxUsers)
	}

	out := make([]Neighbor, len(others))
	for i, other := range others {
		out[i] = Neighbor{
			UserID:     other,
			Similarity: jaccard(target, idSet(history[other])),
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})

	return out
}

// novelItems collects the ids selected by the given neighbours that the
// target has not selected, in first-seen order, and resolves them against
// the catalog. Unknown ids are dropped.
func novelItems(idx *catalogIndex, history SelectionHistory, nearest []Neighbor, target map[string]struct{}) []Item {
	seen := make(map[string]struct{})
	var out []Item

	for _, n := range nearest {
		for _, id := range history[n.UserID] {
			if _, own := target[id]; own {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			if item, ok := idx.lookup(id); ok {
				out = append(out, *item)
			}
		}
	}

	return out
}

// collaborative produces the collaborative ranking for userID. content
// supplies the user's content ranking and is only called when backfill is
// needed. The second return value reports whether the cold-start fallback
// was used.
func collaborative(cfg *Config, s *snapshot, userID string, content func() []Item) ([]Item, bool) {
	selections := s.history[userID]
	if len(selections) == 0 {
		return bestsellers(s.catalog, cfg.Limits.MaxResults), true
	}

	target := idSet(selections)
	nearest := truncate(neighbors(s.history, userID, target, cfg.Limits.MaxUsers), cfg.Limits.SimilarUsers)
	recs := novelItems(s.idx, s.history, nearest, target)

	if len(recs) < cfg.Limits.CollaborativeMinResults {
		recs = backfill(recs, content(), cfg.Limits.MaxResults)
	}

	return truncate(recs, cfg.Limits.MaxResults), false
}

// backfill appends items from extra that are not yet in recs until recs
// holds limit items or extra is exhausted.
func backfill(recs, extra []Item, limit int) []Item {
	present := idSet(ids(recs))
	for i := range extra {
		if len(recs) >= limit {
			break
		}
		if _, ok := present[extra[i].ID]; ok {
			continue
		}
		present[extra[i].ID] = struct{}{}
		recs = append(recs, extra[i])
	}
	return recs
}
