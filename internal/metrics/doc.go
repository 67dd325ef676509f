// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package init and are exposed at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Requests by method, route pattern and status (counter)
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rejections by the rate limiter (counter)

Recommendation Metrics:
  - recommend_requests_total: Ranking calls by strategy and outcome (counter)
  - recommend_duration_seconds: Ranking latency (histogram)
  - recommend_result_size: Items returned per call (histogram)
  - recommend_batch_size: Users per batch call (histogram)
  - cache_hits_total / cache_misses_total: Profile cache efficiency

Store Metrics:
  - store_operation_duration_seconds: Badger operation latency (histogram)
  - store_operation_errors_total: Failed operations by error class (counter)
  - store_gc_runs_total: Value log GC passes by result (counter)
  - catalog_items, wishlist_users: Current store sizes (gauges)
  - catalog_import_rows_total: CSV rows imported or rejected (counter)

# Usage

	start := time.Now()
	items := engine.Hybrid(ctx, catalog, history, userID)
	metrics.RecordRecommendation("hybrid", "ranked", time.Since(start), len(items))

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
