// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/wishrank/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router. mw may be nil for the default
// middleware configuration.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)        // X-Request-ID header and logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/performance", router.handler.HealthPerformance)
		r.Get("/engine", router.handler.EngineStatus)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(router.handler.perf.Middleware)
		r.Use(chimiddleware.Compress(5, "application/json", "text/csv"))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", router.handler.ListCatalog)
			r.Post("/", router.handler.PutItem)
			r.Get("/template", router.handler.CatalogTemplate)
			r.With(router.chiMiddleware.RateLimitImport()).Post("/import", router.handler.ImportCatalog)
			r.Get("/{itemID}", router.handler.GetItem)
			r.Delete("/{itemID}", router.handler.DeleteItem)
		})

		r.Route("/wishlists", func(r chi.Router) {
			r.Get("/", router.handler.ListWishlists)
			r.Get("/{userID}", router.handler.GetWishlist)
			r.Put("/{userID}/items/{itemID}", router.handler.AddWishlistItem)
			r.Delete("/{userID}/items/{itemID}", router.handler.RemoveWishlistItem)
		})

		r.Route("/recommendations", func(r chi.Router) {
			r.Post("/batch", router.handler.BatchRecommendations)
			r.Get("/profile/{userID}", router.handler.RecommendationProfile)
			r.Get("/{strategy}", router.handler.Recommendations)
		})
	})

	return r
}
