// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

/*
Package main is the entry point for the Wishrank server.

Wishrank ranks a jewelry catalog for each shopper from the items they have
wishlisted, using content scoring, collaborative filtering over other
shoppers' wishlists, or a hybrid of both.

# Application Architecture

	RootSupervisor ("wishrank")
	├── DataSupervisor ("data-layer")
	│   └── StoreService (Badger value log GC, gauges)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (chi router)

Startup order:

 1. Configuration: Koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog initialized from the logging section
 3. Store: Badger opened at STORE_PATH, or in memory
 4. Seed: the reference catalog is loaded when the store is empty and
    SEED_REFERENCE_CATALOG is true
 5. Engine: recommendation engine with the recommend section
 6. Supervisor tree: HTTP server and store maintenance

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT, then the store is
closed.

# Example Usage

	export STORE_PATH=/var/lib/wishrank
	export CORS_ORIGINS=https://shop.example.com
	./wishrank

Ephemeral demo with the reference catalog:

	STORE_IN_MEMORY=true LOG_FORMAT=console ./wishrank
	curl 'localhost:3857/api/v1/recommendations/hybrid?user=alice'
*/
package main
