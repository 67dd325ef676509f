// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

/*
Package config provides centralized configuration management for Wishrank.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file, then environment variables. The file is taken from CONFIG_PATH
or the first of DefaultConfigPaths that exists.

# Configuration Structure

  - ServerConfig: HTTP listener (host, port, timeouts, environment)
  - StoreConfig: BadgerDB path, in-memory mode, value log GC
  - SecurityConfig: CORS origins, rate limiting, request body cap
  - LoggingConfig: zerolog level, format and caller
  - recommend.Config: ranking weights, boosts, limits and profile cache

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3857)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown bound (default: 10s)
  - ENVIRONMENT: development, staging or production

Store:
  - STORE_PATH: Badger data directory (default: /data/wishrank)
  - STORE_IN_MEMORY: Keep data in memory only (default: false)
  - STORE_SYNC_WRITES: fsync every commit (default: false)
  - STORE_GC_INTERVAL: Value log GC interval (default: 10m)
  - STORE_GC_RATIO: Value log GC discard ratio (default: 0.5)
  - SEED_REFERENCE_CATALOG: Seed the reference catalog into an empty store (default: true)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per client (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)
  - MAX_BODY_BYTES: Request body cap (default: 10MB)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

Recommendation engine:
  - RECOMMEND_MAX_RESULTS (default: 12)
  - RECOMMEND_COLLABORATIVE_MIN_RESULTS (default: 8)
  - RECOMMEND_SIMILAR_USERS (default: 3)
  - RECOMMEND_MAX_USERS: Bound on users scanned, 0 = all (default: 0)
  - RECOMMEND_BATCH_CONCURRENCY (default: 4)
  - RECOMMEND_MAX_BATCH_USERS (default: 100)
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_MAX_ENTRIES
  - RECOMMEND_WEIGHT_<ATTRIBUTE>, RECOMMEND_BOOST_<FLAG>, RECOMMEND_PRICE_WEIGHT

# Validation

Struct tags are checked with go-playground/validator through the
validation package, followed by cross-field checks and
recommend.Config.Validate. LoadWithKoanf refuses to return an invalid
configuration.
*/
package config
