// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - Request ID: UUID-based request tracking for distributed tracing
  - Prometheus Metrics: HTTP request/response instrumentation
  - Performance Monitor: sliding-window latency percentiles and slow
    request logging

All middleware has the chi signature func(http.Handler) http.Handler.
Metric and monitor labels use the chi route pattern, so they must run
inside a chi router:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(monitor.Middleware)

Thread Safety:

All components are safe for concurrent use.
*/
package middleware
