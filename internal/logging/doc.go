// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

// Package logging provides centralized zerolog-based structured logging.
//
// A single global zerolog logger is configured at startup. JSON is the
// default output; the console format is meant for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("server listening")
//	logging.Ctx(ctx).Warn().Str("item_id", id).Msg("stale wishlist entry")
//
// # Context
//
// The request ID middleware stores a request ID in the request context;
// Ctx adds it (and any correlation ID) to every line logged through it.
//
// # slog
//
// NewSlogLogger bridges zerolog to log/slog for the supervisor tree, which
// reports service restarts through sutureslog.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send(), and prefer typed
// fields to formatted messages:
//
//	logging.Info().Int("items", n).Msg("catalog seeded")   // Correct
//	logging.Info().Msgf("seeded %d items", n)              // Avoid
package logging
