// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

/*
Package api provides the HTTP interface of Wishrank.

Routes are served by a chi router built in SetupChi:

	GET    /api/v1/health/live                    liveness probe
	GET    /api/v1/health/ready                   store reachability and dataset sizes
	GET    /api/v1/health/performance             per-route latency percentiles
	GET    /api/v1/health/engine                  engine counters and configuration

	GET    /api/v1/catalog                        browse with filters and sort
	POST   /api/v1/catalog                        create or replace one item
	POST   /api/v1/catalog/import                 CSV import
	GET    /api/v1/catalog/template               CSV import template
	GET    /api/v1/catalog/{itemID}               one item
	DELETE /api/v1/catalog/{itemID}               delete an item

	GET    /api/v1/wishlists                      users and wishlist sizes
	GET    /api/v1/wishlists/{userID}             one wishlist with resolved items
	PUT    /api/v1/wishlists/{userID}/items/{id}  add an item
	DELETE /api/v1/wishlists/{userID}/items/{id}  remove an item

	GET    /api/v1/recommendations/{strategy}     ?user= ranking (content, collaborative, hybrid)
	GET    /api/v1/recommendations/profile/{id}   explain a user's ranking
	POST   /api/v1/recommendations/batch          rank several users at once

	GET    /metrics                               Prometheus scrape endpoint

Every JSON response uses the models.APIResponse envelope
{status, data, metadata, error} and carries an ETag; a GET repeating a
matching If-None-Match gets 304 Not Modified.

Middleware order: request ID, real IP, panic recovery and CORS for every
route; then per-group rate limiting (go-chi/httprate), security headers,
Prometheus instrumentation, the latency monitor and response compression.

Each ranking request reads one consistent store snapshot and hands it to the
recommend engine, so concurrent wishlist edits never mix into a single
ranking.
*/
package api
