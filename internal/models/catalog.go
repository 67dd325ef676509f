// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package models

import (
	"github.com/tomtom215/wishrank/internal/catalog"
)

// ImportSummary is the payload of a CSV import.
type ImportSummary struct {
	Rows     int                `json:"rows"`
	Imported int                `json:"imported"`
	Added    int                `json:"added"`
	Rejected []catalog.RowError `json:"rejected"`
}

// DeleteResult confirms a removed resource.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
