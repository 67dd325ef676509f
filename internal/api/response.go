// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"

	"github.com/tomtom215/wishrank/internal/logging"
	"github.com/tomtom215/wishrank/internal/models"
	"github.com/tomtom215/wishrank/internal/validation"
)

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	ErrCodeUnknownStrategy    = "UNKNOWN_STRATEGY"
	ErrCodeBatchTooLarge      = "BATCH_TOO_LARGE"
	ErrCodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	ErrCodeStore              = "STORE_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// respondJSON sends a JSON response with an ETag. A GET whose If-None-Match
// matches the ETag gets 304 Not Modified and no body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	response.Metadata.Timestamp = time.Now().UTC()
	if response.Metadata.RequestID == "" {
		response.Metadata.RequestID = logging.RequestIDFromContext(r.Context())
	}

	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// The ETag ignores metadata so that identical payloads revalidate.
	etag := generateETag(response)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("ETag", etag)

	if status == http.StatusOK && r.Method == http.MethodGet && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag hashes the status and payload of a response with xxhash.
func generateETag(response *models.APIResponse) string {
	d := xxhash.New()
	_, _ = d.WriteString(response.Status)
	if payload, err := json.Marshal(response.Data); err == nil {
		_, _ = d.Write(payload)
	}
	return `"` + strconv.FormatUint(d.Sum64(), 16) + `"`
}

// respondData sends a success envelope. meta may be nil.
func respondData(w http.ResponseWriter, r *http.Request, status int, data interface{}, meta *models.Metadata) {
	resp := &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   data,
	}
	if meta != nil {
		resp.Metadata = *meta
	}
	respondJSON(w, r, status, resp)
}

// respondError sends an error response. A non-nil err is logged, sanitized,
// and never echoed to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.
			Str("code", code).
			Int("status", status).
			Str("error", logging.SanitizeError(err.Error())).
			Msg("API Error")
	}

	respondJSON(w, r, status, &models.APIResponse{
		Status: models.StatusError,
		Data:   nil,
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondValidationError sends a 400 carrying per-field details.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondJSON(w, r, http.StatusBadRequest, &models.APIResponse{
		Status: models.StatusError,
		Error: &models.APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
	})
}

// listMeta returns metadata carrying a list length.
func listMeta(n int) *models.Metadata {
	return &models.Metadata{Count: &n}
}
