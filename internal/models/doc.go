// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

/*
Package models defines the API request and response structures for Wishrank.

Key Components:

  - APIResponse: Standard response envelope {status, data, metadata, error}
  - APIError: Machine-readable error code with message and details
  - Metadata: Timestamp, request id, timing and list counts
  - HealthStatus, EngineStatus: health endpoint payloads
  - Wishlist, WishlistChange, WishlistSummary: wishlist payloads
  - ImportSummary, DeleteResult: catalog write payloads
  - BatchRecommendationRequest, RecommendationList: ranking payloads

Catalog items themselves are recommend.Item; this package only wraps them.

JSON Serialization:

All structs use snake_case JSON tags and are encoded with goccy/go-json by
the api package. Request structs carry go-playground/validator tags and are
checked through the validation package before use.
*/
package models
