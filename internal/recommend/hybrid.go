// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

// Merge interleaves content and collaborative position by position,
// content first, keeping the first occurrence of every id. When fewer than
// 12 items result, trending catalog items that are neither emitted nor in
// excludeIDs are appended in catalog order. The result holds at most 12
// items.
func Merge(content, collaborative, catalog []Item, excludeIDs []string) []Item {
	return merge(content, collaborative, catalog, idSet(excludeIDs), DefaultConfig().Limits.MaxResults)
}

func merge(content, collaborative, catalog []Item, exclude map[string]struct{}, limit int) []Item {
	out := make([]Item, 0, limit)
	emitted := make(map[string]struct{}, limit)

	emit := func(item *Item) {
		if _, dup := emitted[item.ID]; dup {
			return
		}
		emitted[item.ID] = struct{}{}
		out = append(out, *item)
	}

	for i := 0; i < max(len(content), len(collaborative)); i++ {
		if i < len(content) {
			emit(&content[i])
		}
		if i < len(collaborative) {
			emit(&collaborative[i])
		}
	}

	for i := range catalog {
		if len(out) >= limit {
			break
		}
		if !catalog[i].IsTrending {
			continue
		}
		if _, own := exclude[catalog[i].ID]; own {
			continue
		}
		emit(&catalog[i])
	}

	return truncate(out, limit)
}
