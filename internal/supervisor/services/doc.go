// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

/*
Package services provides suture.Service wrappers for Wishrank components.

Each wrapper translates a component's lifecycle into suture's
context-aware Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Runs *http.Server.ListenAndServe in a goroutine
  - Calls Shutdown with a bounded timeout when the context is canceled
  - Reports an unexpected stop as an error so the supervisor restarts it

Store Maintenance (StoreService):
  - Runs Badger value log GC on a fixed interval
  - Refreshes the catalog, wishlist and uptime gauges after every pass
  - Logs GC failures and keeps running

# Error Semantics

Serve returns ctx.Err() on a requested shutdown and a non-nil error for
anything else. Suture restarts a service whose Serve returned, with
exponential backoff once the failure threshold is crossed.
*/
package services
