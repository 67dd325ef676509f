// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

// Package catalog provides the product data that feeds the ranking engine:
// the reference product set, CSV import and browse filtering.
//
// # CSV Import
//
// ImportCSV reads a header row and maps columns by name, case-insensitively
// (isNew and is_new are equivalent). Quoted fields may contain commas.
// Per-row problems never abort the import; they are collected as RowError
// values with the source line number:
//
//	result, err := catalog.ImportCSV(r)
//	if err != nil {
//	    return err // no header or unreadable input
//	}
//	for _, rej := range result.Rejected {
//	    log.Warn().Int("line", rej.Line).Msg(rej.Message)
//	}
//	store.PutItems(ctx, result.Items)
//
// Imported descriptions are cut to MaxDescriptionLength runes and at most
// MaxImagesPerItem image URLs are kept. Template returns a sample file.
//
// # Browsing
//
// Apply narrows a catalog with a Filter and keeps catalog order.
package catalog
