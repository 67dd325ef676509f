// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wishrank/internal/catalog"
	"github.com/tomtom215/wishrank/internal/logging"
	"github.com/tomtom215/wishrank/internal/models"
	"github.com/tomtom215/wishrank/internal/recommend"
)

// ListCatalog returns the catalog narrowed by query filters.
//
// Query parameters (all optional, list values comma separated or repeated):
//   - category, type, material, purity, gemstone, gender, occasion, tag
//   - min_price, max_price, min_gold_weight, max_gold_weight,
//     min_diamond_cts, max_diamond_cts
//   - sort: featured (default), new, bestsellers, trending
func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	items, err := h.store.Items(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "Catalog not found")
		return
	}

	result := catalog.Apply(items, filter)
	respondData(w, r, http.StatusOK, result, listMeta(len(result)))
}

// GetItem returns one catalog item.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemID")
	if !pathID(w, r, id, "item id") {
		return
	}

	item, err := h.store.Item(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Item not found")
		return
	}
	respondData(w, r, http.StatusOK, item, nil)
}

// PutItem creates or replaces one catalog item. It answers 201 when the id
// is new and 200 when an existing item was replaced.
func (h *Handler) PutItem(w http.ResponseWriter, r *http.Request) {
	var item recommend.Item
	if !h.decodeJSON(w, r, &item) {
		return
	}
	if !validateRequest(w, r, &item) {
		return
	}

	added, err := h.store.PutItems(r.Context(), []recommend.Item{item})
	if err != nil {
		respondStoreError(w, r, err, "Item not found")
		return
	}
	h.engine.InvalidateCache()

	status := http.StatusOK
	if added > 0 {
		status = http.StatusCreated
	}
	logging.Ctx(r.Context()).Info().
		Str("item_id", item.ID).
		Bool("created", added > 0).
		Msg("Catalog item saved")

	respondData(w, r, status, item, nil)
}

// ImportCatalog loads a CSV body into the catalog. Valid rows are upserted;
// invalid rows are reported back without failing the import.
func (h *Handler) ImportCatalog(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)

	result, err := catalog.ImportCSV(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			respondError(w, r, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "Request body too large", err)
		case errors.Is(err, catalog.ErrNoHeader):
			respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "CSV body has no header row", nil)
		default:
			respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Invalid CSV body", err)
		}
		return
	}

	added, err := h.store.PutItems(r.Context(), result.Items)
	if err != nil {
		respondStoreError(w, r, err, "Catalog not found")
		return
	}
	if len(result.Items) > 0 {
		h.engine.InvalidateCache()
	}

	rejected := result.Rejected
	if rejected == nil {
		rejected = []catalog.RowError{}
	}

	logging.Ctx(r.Context()).Info().
		Int("rows", result.Rows).
		Int("imported", len(result.Items)).
		Int("added", added).
		Int("rejected", len(rejected)).
		Msg("Catalog import completed")

	respondData(w, r, http.StatusOK, models.ImportSummary{
		Rows:     result.Rows,
		Imported: len(result.Items),
		Added:    added,
		Rejected: rejected,
	}, nil)
}

// CatalogTemplate serves the CSV import template.
func (h *Handler) CatalogTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="catalog-template.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(catalog.Template())); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write catalog template")
	}
}

// DeleteItem removes an item from the catalog and from every wishlist.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemID")
	if !pathID(w, r, id, "item id") {
		return
	}

	if err := h.store.DeleteItem(r.Context(), id); err != nil {
		respondStoreError(w, r, err, "Item not found")
		return
	}
	h.engine.InvalidateCache()

	logging.Ctx(r.Context()).Info().Str("item_id", id).Msg("Catalog item deleted")
	respondData(w, r, http.StatusOK, models.DeleteResult{ID: id, Deleted: true}, nil)
}

// parseFilter builds a catalog.Filter from query parameters.
func parseFilter(q url.Values) (catalog.Filter, error) {
	f := catalog.Filter{
		Categories: listParam(q, "category"),
		Types:      listParam(q, "type"),
		Materials:  listParam(q, "material"),
		Purities:   listParam(q, "purity"),
		Gemstones:  listParam(q, "gemstone"),
		Genders:    listParam(q, "gender"),
		Occasions:  listParam(q, "occasion"),
		Tags:       listParam(q, "tag"),
	}

	sort, ok := catalog.ParseSortMode(q.Get("sort"))
	if !ok {
		return f, fmt.Errorf("sort must be one of: featured, new, bestsellers, trending")
	}
	f.Sort = sort

	var err error
	if f.Price, err = rangeParam(q, "price"); err != nil {
		return f, err
	}
	if f.GoldWeight, err = rangeParam(q, "gold_weight"); err != nil {
		return f, err
	}
	if f.DiamondCts, err = rangeParam(q, "diamond_cts"); err != nil {
		return f, err
	}
	return f, nil
}

// listParam collects comma separated and repeated values of one parameter.
func listParam(q url.Values, name string) []string {
	var out []string
	for _, raw := range q[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// rangeParam reads min_<name> and max_<name>. A missing bound is open; nil
// means neither was given.
func rangeParam(q url.Values, name string) (*catalog.Range, error) {
	minRaw, maxRaw := q.Get("min_"+name), q.Get("max_"+name)
	if minRaw == "" && maxRaw == "" {
		return nil, nil
	}

	rng := &catalog.Range{Min: math.Inf(-1), Max: math.Inf(1)}
	if minRaw != "" {
		v, err := strconv.ParseFloat(minRaw, 64)
		if err != nil || math.IsNaN(v) {
			return nil, fmt.Errorf("min_%s must be a number", name)
		}
		rng.Min = v
	}
	if maxRaw != "" {
		v, err := strconv.ParseFloat(maxRaw, 64)
		if err != nil || math.IsNaN(v) {
			return nil, fmt.Errorf("max_%s must be a number", name)
		}
		rng.Max = v
	}
	if rng.Min > rng.Max {
		return nil, fmt.Errorf("min_%s must not exceed max_%s", name, name)
	}
	return rng, nil
}
