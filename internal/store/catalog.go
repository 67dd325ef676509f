// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/wishrank/internal/recommend"
)

// putBatchSize bounds the items written per transaction.
const putBatchSize = 500

// PutItems inserts or replaces items. New ids are appended to the catalog
// order; replaced items keep their position. It returns how many ids were
// new.
func (s *Store) PutItems(ctx context.Context, items []recommend.Item) (added int, err error) {
	defer s.observe("put_items", time.Now(), &err)
	if err := s.begin(ctx); err != nil {
		return 0, err
	}
	defer s.mu.RUnlock()

	for start := 0; start < len(items); start += putBatchSize {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		batch := items[start:min(start+putBatchSize, len(items))]

		n, err := s.putBatch(batch)
		if err != nil {
			return added, err
		}
		added += n
	}

	return added, nil
}

func (s *Store) putBatch(items []recommend.Item) (int, error) {
	added := 0
	err := s.update(func(txn *badger.Txn) error {
		order, err := readOrder(txn)
		if err != nil {
			return err
		}
		known := make(map[string]struct{}, len(order))
		for _, id := range order {
			known[id] = struct{}{}
		}

		added = 0
		for i := range items {
			if err := setJSON(txn, prefixItem+items[i].ID, &items[i]); err != nil {
				return err
			}
			if _, ok := known[items[i].ID]; !ok {
				known[items[i].ID] = struct{}{}
				order = append(order, items[i].ID)
				added++
			}
		}

		return setJSON(txn, keyOrder, order)
	})
	if err != nil {
		return 0, fmt.Errorf("put items: %w", err)
	}
	return added, nil
}

// Item returns the item with the given id.
func (s *Store) Item(ctx context.Context, id string) (item recommend.Item, err error) {
	defer s.observe("get_item", time.Now(), &err)
	if err := s.begin(ctx); err != nil {
		return recommend.Item{}, err
	}
	defer s.mu.RUnlock()

	err = s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, prefixItem+id, &item)
	})
	if errors.Is(err, ErrNotFound) {
		return recommend.Item{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return recommend.Item{}, fmt.Errorf("get item %q: %w", id, err)
	}
	return item, nil
}

// Items returns the catalog in insertion order.
func (s *Store) Items(ctx context.Context) (items []recommend.Item, err error) {
	defer s.observe("list_items", time.Now(), &err)
	if err := s.begin(ctx); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	err = s.db.View(func(txn *badger.Txn) error {
		var err error
		items, err = readCatalog(txn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ItemCount returns the number of catalog items.
func (s *Store) ItemCount(ctx context.Context) (n int, err error) {
	defer s.observe("count_items", time.Now(), &err)
	if err := s.begin(ctx); err != nil {
		return 0, err
	}
	defer s.mu.RUnlock()

	err = s.db.View(func(txn *badger.Txn) error {
		var err error
		n, err = countPrefix(txn, prefixItem)
		return err
	})
	return n, err
}

// DeleteItem removes an item and drops its id from every wishlist.
func (s *Store) DeleteItem(ctx context.Context, id string) (err error) {
	defer s.observe("delete_item", time.Now(), &err)
	if err := s.begin(ctx); err != nil {
		return err
	}
	defer s.mu.RUnlock()

	err = s.update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(prefixItem + id)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := txn.Delete([]byte(prefixItem + id)); err != nil {
			return err
		}

		order, err := readOrder(txn)
		if err != nil {
			return err
		}
		if err := setJSON(txn, keyOrder, slices.DeleteFunc(order, func(o string) bool { return o == id })); err != nil {
			return err
		}

		return removeFromWishlists(txn, id)
	})
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete item %q: %w", id, err)
	}
	return nil
}

// removeFromWishlists drops id from every wishlist holding it.
func removeFromWishlists(txn *badger.Txn, id string) error {
	updates := make(map[string][]string)
	err := scanPrefix(txn, prefixWishlist, func(user string, val []byte) error {
		var list []string
		if err := json.Unmarshal(val, &list); err != nil {
			return fmt.Errorf("decode wishlist %q: %w", user, err)
		}
		if slices.Contains(list, id) {
			updates[user] = slices.DeleteFunc(list, func(o string) bool { return o == id })
		}
		return nil
	})
	if err != nil {
		return err
	}

	for user, list := range updates {
		if err := writeWishlist(txn, user, list); err != nil {
			return err
		}
	}
	return nil
}

// readOrder returns the catalog id order, empty when unset.
func readOrder(txn *badger.Txn) ([]string, error) {
	var order []string
	if err := getJSON(txn, keyOrder, &order); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("read catalog order: %w", err)
	}
	return order, nil
}

// readCatalog resolves the catalog order to items. Ids whose item key is
// missing are skipped.
func readCatalog(txn *badger.Txn) ([]recommend.Item, error) {
	order, err := readOrder(txn)
	if err != nil {
		return nil, err
	}

	items := make([]recommend.Item, 0, len(order))
	for _, id := range order {
		var item recommend.Item
		err := getJSON(txn, prefixItem+id, &item)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read item %q: %w", id, err)
		}
		items = append(items, item)
	}
	return items, nil
}
