// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/wishrank/internal/logging"
	"github.com/tomtom215/wishrank/internal/metrics"
	"github.com/tomtom215/wishrank/internal/recommend"
	"github.com/tomtom215/wishrank/internal/validation"
)

const (
	// MaxDescriptionLength is the longest description kept on import.
	// Longer text is cut and suffixed with "...".
	MaxDescriptionLength = 200

	// MaxImagesPerItem is the number of image URLs kept per imported row.
	MaxImagesPerItem = 2
)

// ErrNoHeader is returned when the CSV input has no header row.
var ErrNoHeader = errors.New("csv has no header row")

// ImportResult summarizes one CSV import.
type ImportResult struct {
	// Items are the rows that parsed and validated, in file order.
	Items []recommend.Item `json:"items"`

	// Rejected lists every row that was skipped.
	Rejected []RowError `json:"rejected"`

	// Rows is the number of data rows read, accepted or not.
	Rows int `json:"rows"`
}

// RowError describes a rejected CSV row.
type RowError struct {
	Line    int    `json:"line"`
	ItemID  string `json:"item_id,omitempty"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("line %d (id %s): %s", e.Line, e.ItemID, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// column identifies the Item field a CSV column maps to.
type column int

const (
	colIgnored column = iota
	colID
	colName
	colDescription
	colPrice
	colCategory
	colType
	colMaterial
	colPurity
	colGemstone
	colOccasion
	colGender
	colGoldWeight
	colDiamondCts
	colIsNew
	colIsBestseller
	colIsTrending
	colImages
	colTags
)

// headerColumns maps lower-cased header names to columns. Both camelCase
// and snake_case spellings are accepted.
var headerColumns = map[string]column{
	"id":            colID,
	"name":          colName,
	"description":   colDescription,
	"price":         colPrice,
	"category":      colCategory,
	"type":          colType,
	"material":      colMaterial,
	"purity":        colPurity,
	"gemstone":      colGemstone,
	"occasion":      colOccasion,
	"gender":        colGender,
	"goldweight":    colGoldWeight,
	"gold_weight":   colGoldWeight,
	"diamondcts":    colDiamondCts,
	"diamond_cts":   colDiamondCts,
	"isnew":         colIsNew,
	"is_new":        colIsNew,
	"isbestseller":  colIsBestseller,
	"is_bestseller": colIsBestseller,
	"istrending":    colIsTrending,
	"is_trending":   colIsTrending,
	"images":        colImages,
	"tags":          colTags,
}

// ImportCSV parses a product CSV. The first row is the header; columns are
// matched by name, case-insensitively, and unknown columns are ignored.
// A row with the wrong number of fields, a non-numeric price, a repeated
// id or a failed validation is recorded in Rejected and skipped. Only a
// missing header or an unreadable input fails the whole import.
func ImportCSV(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make([]column, len(header))
	for i, name := range header {
		columns[i] = headerColumns[strings.ToLower(strings.TrimSpace(name))]
	}

	result := &ImportResult{Items: []recommend.Item{}, Rejected: []RowError{}}
	seen := make(map[string]struct{})

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("read csv: %w", err)
			}
			result.Rows++
			result.reject(RowError{Line: parseErr.StartLine, Message: parseErr.Err.Error()})
			continue
		}
		result.Rows++
		line, _ := reader.FieldPos(0)

		if len(record) != len(columns) {
			result.reject(RowError{
				Line:    line,
				Message: fmt.Sprintf("expected %d columns, got %d", len(columns), len(record)),
			})
			continue
		}

		item, rowErr := parseRow(columns, record)
		if rowErr != "" {
			result.reject(RowError{Line: line, ItemID: item.ID, Message: rowErr})
			continue
		}
		if _, dup := seen[item.ID]; dup {
			result.reject(RowError{Line: line, ItemID: item.ID, Message: "duplicate id"})
			continue
		}

		seen[item.ID] = struct{}{}
		result.Items = append(result.Items, item)
	}

	metrics.RecordImport(len(result.Items), len(result.Rejected))
	logging.Debug().
		Int("rows", result.Rows).
		Int("imported", len(result.Items)).
		Int("rejected", len(result.Rejected)).
		Msg("catalog csv parsed")

	return result, nil
}

func (r *ImportResult) reject(e RowError) {
	r.Rejected = append(r.Rejected, e)
	logging.Debug().Int("line", e.Line).Str("item_id", e.ItemID).Str("reason", e.Message).Msg("csv row rejected")
}

// parseRow maps one record onto an Item. The returned message is empty
// when the row is valid.
func parseRow(columns []column, record []string) (recommend.Item, string) {
	var item recommend.Item
	priceSet := false

	for i, col := range columns {
		value := strings.TrimSpace(record[i])

		switch col {
		case colID:
			item.ID = value
		case colName:
			item.Name = value
		case colDescription:
			item.Description = truncateRunes(value, MaxDescriptionLength)
		case colPrice:
			price, err := strconv.ParseFloat(value, 64)
			if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
				return item, fmt.Sprintf("price %q is not a number", value)
			}
			item.Price = price
			priceSet = true
		case colCategory:
			item.Category = value
		case colType:
			item.Type = value
		case colMaterial:
			item.Material = value
		case colPurity:
			item.Purity = value
		case colGemstone:
			item.Gemstone = value
		case colOccasion:
			item.Occasion = value
		case colGender:
			item.Gender = value
		case colGoldWeight:
			item.GoldWeight = value
		case colDiamondCts:
			item.DiamondCts = value
		case colIsNew:
			item.IsNew = parseBool(value)
		case colIsBestseller:
			item.IsBestseller = parseBool(value)
		case colIsTrending:
			item.IsTrending = parseBool(value)
		case colImages:
			item.Images = truncateList(splitList(value), MaxImagesPerItem)
		case colTags:
			item.Tags = splitList(value)
		}
	}

	if !priceSet {
		return item, "price is required"
	}
	if verr := validation.ValidateStruct(&item); verr != nil {
		return item, verr.Error()
	}

	return item, ""
}

// parseBool treats only "true", in any case, as true.
func parseBool(s string) bool {
	return strings.EqualFold(s, "true")
}

// splitList splits a '|' separated cell, dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func truncateList(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// truncateRunes cuts s to n runes and appends "..." when it was longer.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// Template returns a sample CSV with the expected header and one row.
func Template() string {
	return `id,name,description,price,category,type,material,purity,gemstone,occasion,gender,isNew,isBestseller,isTrending,images
1,"Diamond Ring","Beautiful diamond ring",45000,Rings,Engagement,"White Gold",18K,Diamond,Wedding,Women,true,false,true,"https://example.com/image1.jpg|https://example.com/image2.jpg"
`
}
