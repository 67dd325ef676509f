// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wishrank/internal/logging"
	"github.com/tomtom215/wishrank/internal/metrics"
	"github.com/tomtom215/wishrank/internal/models"
)

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, http.StatusOK, map[string]string{"status": "alive"}, nil)
}

// HealthReady reports store reachability and dataset sizes. It answers 503
// while the store cannot be read.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:    "healthy",
		Version:   h.opts.Version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now().UTC(),
	}

	stats, err := h.store.Stats(r.Context())
	if err != nil {
		health.Status = "degraded"
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		respondJSON(w, r, http.StatusServiceUnavailable, &models.APIResponse{
			Status: models.StatusError,
			Data:   health,
			Error: &models.APIError{
				Code:    ErrCodeServiceUnavailable,
				Message: "Store is unavailable",
			},
		})
		return
	}

	health.StoreOK = true
	health.CatalogItems = stats.Items
	health.WishlistUsers = stats.Users
	metrics.UpdateUptime(h.startTime)

	respondData(w, r, http.StatusOK, health, nil)
}

// HealthPerformance returns per-route latency over the recent window.
func (h *Handler) HealthPerformance(w http.ResponseWriter, r *http.Request) {
	stats := h.perf.Stats()
	respondData(w, r, http.StatusOK, stats, listMeta(len(stats)))
}

// EngineStatus returns the engine counters and active configuration.
func (h *Handler) EngineStatus(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, http.StatusOK, models.EngineStatus{
		Metrics: h.engine.GetMetrics(),
		Config:  h.engine.GetConfig(),
	}, nil)
}
