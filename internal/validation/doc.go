// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built on first use. It reports fields by
// their JSON name and registers one custom tag:
//
//   - itemid: 1-64 characters of letters, digits, '.', '_', '@' or '-'.
//     Used for item ids and user ids.
//
// # Usage
//
//	if verr := validation.ValidateStruct(&item); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Catalog CSV import validates every parsed row the same way and reports
// the combined message per rejected row.
package validation
