// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package models

import (
	"github.com/tomtom215/wishrank/internal/recommend"
)

// BatchRecommendationRequest is the body of the batch endpoint.
type BatchRecommendationRequest struct {
	UserIDs  []string `json:"user_ids" validate:"required,min=1,dive,itemid"`
	Strategy string   `json:"strategy" validate:"omitempty,oneof=content collaborative hybrid"`
}

// RecommendationList is one user's ranked items.
type RecommendationList struct {
	UserID   string           `json:"user_id"`
	Strategy string           `json:"strategy"`
	Items    []recommend.Item `json:"items"`
}

// BatchRecommendationResponse holds one ranked list per requested user.
type BatchRecommendationResponse struct {
	Strategy string                      `json:"strategy"`
	Results  map[string][]recommend.Item `json:"results"`
}
