// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package api

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wishrank/internal/logging"
	"github.com/tomtom215/wishrank/internal/models"
	"github.com/tomtom215/wishrank/internal/recommend"
	"github.com/tomtom215/wishrank/internal/store"
)

// ListWishlists returns every user with a non-empty wishlist and its size.
func (h *Handler) ListWishlists(w http.ResponseWriter, r *http.Request) {
	history, err := h.store.Histories(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "Wishlists not found")
		return
	}

	summaries := make([]models.WishlistSummary, 0, len(history))
	for user, ids := range history {
		summaries = append(summaries, models.WishlistSummary{UserID: user, Items: len(ids)})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UserID < summaries[j].UserID
	})

	respondData(w, r, http.StatusOK, summaries, listMeta(len(summaries)))
}

// GetWishlist returns a user's wishlist with the referenced items resolved.
// Ids whose item has left the catalog stay in item_ids but are not resolved.
func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !pathID(w, r, userID, "user id") {
		return
	}

	ids, err := h.store.Wishlist(r.Context(), userID)
	if err != nil {
		respondStoreError(w, r, err, "Wishlist not found")
		return
	}

	items := make([]recommend.Item, 0, len(ids))
	for _, id := range ids {
		item, err := h.store.Item(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			respondStoreError(w, r, err, "Item not found")
			return
		}
		items = append(items, item)
	}

	respondData(w, r, http.StatusOK, models.Wishlist{
		UserID:  userID,
		ItemIDs: ids,
		Items:   items,
	}, listMeta(len(ids)))
}

// AddWishlistItem adds an existing catalog item to a user's wishlist.
// Adding an item twice is not an error; changed reports false.
func (h *Handler) AddWishlistItem(w http.ResponseWriter, r *http.Request) {
	h.changeWishlist(w, r, h.store.AddToWishlist, "Wishlist item added")
}

// RemoveWishlistItem removes an item from a user's wishlist. Removing an
// absent item is not an error; changed reports false.
func (h *Handler) RemoveWishlistItem(w http.ResponseWriter, r *http.Request) {
	h.changeWishlist(w, r, h.store.RemoveFromWishlist, "Wishlist item removed")
}

type wishlistOp func(ctx context.Context, userID, itemID string) (bool, error)

func (h *Handler) changeWishlist(w http.ResponseWriter, r *http.Request, op wishlistOp, msg string) {
	userID := chi.URLParam(r, "userID")
	if !pathID(w, r, userID, "user id") {
		return
	}
	itemID := chi.URLParam(r, "itemID")
	if !pathID(w, r, itemID, "item id") {
		return
	}

	changed, err := op(r.Context(), userID, itemID)
	if err != nil {
		respondStoreError(w, r, err, "Item not found")
		return
	}

	ids, err := h.store.Wishlist(r.Context(), userID)
	if err != nil {
		respondStoreError(w, r, err, "Wishlist not found")
		return
	}

	if changed {
		logging.Ctx(r.Context()).Info().
			Str("user_id", logging.SanitizeUserID(userID)).
			Str("item_id", itemID).
			Msg(msg)
	}

	respondData(w, r, http.StatusOK, models.WishlistChange{
		UserID:  userID,
		ItemID:  itemID,
		Changed: changed,
		ItemIDs: ids,
	}, listMeta(len(ids)))
}
