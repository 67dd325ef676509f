// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wishrank/internal/models"
	"github.com/tomtom215/wishrank/internal/recommend"
)

// Recommendations ranks the catalog for one user.
//
// GET /api/v1/recommendations/{strategy}?user={userID}
//
// strategy is content, collaborative or hybrid. The user parameter may be
// omitted, in which case the strategy's cold-start fallback is returned.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	strategy, ok := recommend.ParseStrategy(chi.URLParam(r, "strategy"))
	if !ok {
		respondError(w, r, http.StatusBadRequest, ErrCodeUnknownStrategy,
			"strategy must be one of: content, collaborative, hybrid", nil)
		return
	}

	userID := r.URL.Query().Get("user")
	if userID != "" && !pathID(w, r, userID, "user id") {
		return
	}

	start := time.Now()
	catalog, history, err := h.store.Snapshot(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "Catalog not found")
		return
	}

	items, err := h.engine.Recommend(r.Context(), catalog, history, userID, strategy)
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	meta := listMeta(len(items))
	meta.Strategy = strategy.String()
	meta.QueryTimeMS = time.Since(start).Milliseconds()

	respondData(w, r, http.StatusOK, models.RecommendationList{
		UserID:   userID,
		Strategy: strategy.String(),
		Items:    items,
	}, meta)
}

// RecommendationProfile explains a user's content ranking: the preference
// profile, every scored item and the nearest neighbors.
func (h *Handler) RecommendationProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !pathID(w, r, userID, "user id") {
		return
	}

	catalog, history, err := h.store.Snapshot(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "Catalog not found")
		return
	}

	respondData(w, r, http.StatusOK, h.engine.Explain(r.Context(), catalog, history, userID), nil)
}

// BatchRecommendations ranks the catalog for several users against one
// snapshot. The strategy defaults to hybrid.
func (h *Handler) BatchRecommendations(w http.ResponseWriter, r *http.Request) {
	var req models.BatchRecommendationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	strategy := recommend.StrategyHybrid
	if req.Strategy != "" {
		// Already checked by the oneof tag.
		strategy, _ = recommend.ParseStrategy(req.Strategy)
	}

	start := time.Now()
	catalog, history, err := h.store.Snapshot(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "Catalog not found")
		return
	}

	results, err := h.engine.RecommendBatch(r.Context(), catalog, history, req.UserIDs, strategy)
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	meta := listMeta(len(results))
	meta.Strategy = strategy.String()
	meta.QueryTimeMS = time.Since(start).Milliseconds()

	respondData(w, r, http.StatusOK, models.BatchRecommendationResponse{
		Strategy: strategy.String(),
		Results:  results,
	}, meta)
}

func (h *Handler) respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrBatchTooLarge):
		respondError(w, r, http.StatusBadRequest, ErrCodeBatchTooLarge, "Too many users in one batch", err)
	case errors.Is(err, recommend.ErrUnknownStrategy):
		respondError(w, r, http.StatusBadRequest, ErrCodeUnknownStrategy, "Unknown strategy", err)
	default:
		respondStoreError(w, r, err, "Not found")
	}
}
