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

// AddToWishlist appends itemID to userID's wishlist. It reports false when
// the item was already there. The item must exist in the catalog.
func (s *Store) AddToWishlist(ctx context.Context, userID, itemID string) (added bool, err error) {
	defer s.observe("wishlist_add", time.Now(), &err)
	if err := s.begin(ctx); err != nil {
		return false, err
	}
	defer s.mu.RUnlock()

	err = s.update(func(txn *badger.Txn) error {
		added = false
		if _, err := txn.Get([]byte(prefixItem + itemID)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("item %q: %w", itemID, ErrNotFound)
			}
			return err
		}

		list, err := readWishlist(txn, userID)
		if err != nil {
			return err
		}
		if slices.Contains(list, itemID) {
			return nil
		}

		added = true
		return writeWishlist(txn, userID, append(list, itemID))
	})
	if err != nil {
		return false, fmt.Errorf("add to wishlist: %w", err)
	}
	return added, nil
}

// RemoveFromWishlist drops itemID from userID's wishlist. It reports false
// when the item was not there.
func (s *Store) RemoveFromWishlist(ctx context.Context, userID, itemID string) (removed bool, err error) {
	defer s.observe("wishlist_remove", time.Now(), &err)
	if err := s.begin(ctx); err != nil {
		return false, err
	}
	defer s.mu.RUnlock()

	err = s.update(func(txn *badger.Txn) error {
		removed = false
		list, err := readWishlist(txn, userID)
		if err != nil {
			return err
		}
		if !slices.Contains(list, itemID) {
			return nil
		}

		removed = true
		return writeWishlist(txn, userID, slices.DeleteFunc(list, func(id string) bool { return id == itemID }))
	})
	if err != nil {
		return false, fmt.Errorf("remove from wishlist: %w", err)
	}
	return removed, nil
}

// Wishlist returns userID's item ids in the order they were added. A user
// without a wishlist gets an empty list.
func (s *Store) Wishlist(ctx context.Context, userID string) (list []string, err error) {
	defer s.observe("wishlist_get", time.Now(), &err)
	if err := s.begin(ctx); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	err = s.db.View(func(txn *badger.Txn) error {
		var err error
		list, err = readWishlist(txn, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// InWishlist reports whether itemID is on userID's wishlist.
func (s *Store) InWishlist(ctx context.Context, userID, itemID string) (bool, error) {
	list, err := s.Wishlist(ctx, userID)
	if err != nil {
		return false, err
	}
	return slices.Contains(list, itemID), nil
}

// Users returns every user with a non-empty wishlist, sorted.
func (s *Store) Users(ctx context.Context) (users []string, err error) {
	defer s.observe("list_users", time.Now(), &err)
	if err := s.begin(ctx); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	users = []string{}
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefixWishlist)
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			users = append(users, string(it.Item().Key()[len(prefixWishlist):]))
		}
		return nil
	})
	return users, err
}

// Histories returns every wishlist keyed by user.
func (s *Store) Histories(ctx context.Context) (history recommend.SelectionHistory, err error) {
	defer s.observe("list_wishlists", time.Now(), &err)
	if err := s.begin(ctx); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	err = s.db.View(func(txn *badger.Txn) error {
		var err error
		history, err = readHistories(txn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list wishlists: %w", err)
	}
	return history, nil
}

// Snapshot reads the catalog and every wishlist in one transaction, so the
// two always agree. Both results are non-nil.
func (s *Store) Snapshot(ctx context.Context) (catalog []recommend.Item, history recommend.SelectionHistory, err error) {
	defer s.observe("snapshot", time.Now(), &err)
	if err := s.begin(ctx); err != nil {
		return nil, nil, err
	}
	defer s.mu.RUnlock()

	err = s.db.View(func(txn *badger.Txn) error {
		var err error
		if catalog, err = readCatalog(txn); err != nil {
			return err
		}
		history, err = readHistories(txn)
		return err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("read snapshot: %w", err)
	}
	return catalog, history, nil
}

func readWishlist(txn *badger.Txn, userID string) ([]string, error) {
	var list []string
	if err := getJSON(txn, prefixWishlist+userID, &list); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("read wishlist %q: %w", userID, err)
	}
	return list, nil
}

// writeWishlist stores list, deleting the key once the list is empty.
func writeWishlist(txn *badger.Txn, userID string, list []string) error {
	if len(list) == 0 {
		return txn.Delete([]byte(prefixWishlist + userID))
	}
	return setJSON(txn, prefixWishlist+userID, list)
}

func readHistories(txn *badger.Txn) (recommend.SelectionHistory, error) {
	history := make(recommend.SelectionHistory)
	err := scanPrefix(txn, prefixWishlist, func(user string, val []byte) error {
		var list []string
		if err := json.Unmarshal(val, &list); err != nil {
			return fmt.Errorf("decode wishlist %q: %w", user, err)
		}
		history[user] = list
		return nil
	})
	return history, err
}
