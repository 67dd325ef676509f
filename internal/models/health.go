// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package models

import (
	"time"

	"github.com/tomtom215/wishrank/internal/recommend"
)

// HealthStatus is the payload of the readiness endpoint.
type HealthStatus struct {
	Status        string    `json:"status"` // "healthy" or "degraded"
	Version       string    `json:"version"`
	StoreOK       bool      `json:"store_ok"`
	CatalogItems  int       `json:"catalog_items"`
	WishlistUsers int       `json:"wishlist_users"`
	Uptime        float64   `json:"uptime_seconds"`
	Timestamp     time.Time `json:"timestamp"`
}

// EngineStatus reports the ranking engine's counters and active tunables.
type EngineStatus struct {
	Metrics recommend.Metrics `json:"metrics"`
	Config  *recommend.Config `json:"config"`
}
