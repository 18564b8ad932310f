// Package normalize turns raw spreadsheet tables into items with a fixed
// shape: trimmed description, numeric unit cost, category, source file.
package normalize

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bidmerge-dev/bidmerge/internal/loader"
	"github.com/bidmerge-dev/bidmerge/internal/model"
)

// ErrMissingColumns signals a table without the required description and
// unit cost columns. Callers skip the file and keep the run going.
var ErrMissingColumns = errors.New("missing required columns")

const (
	colDescription = "description"
	colUnitCost    = "unit cost"
)

// columnAliases maps alternate header spellings to canonical column names.
var columnAliases = map[string]string{
	"item description": colDescription,
}

// nonCost matches every character that is not a digit or decimal point.
var nonCost = regexp.MustCompile(`[^0-9.]`)

// File normalizes one loaded table. It returns the items in row order, the
// number of rows dropped for unparseable costs, or ErrMissingColumns when the
// table lacks a description or unit cost column.
func File(t loader.Table, sourceFile, category string) ([]model.Item, int, error) {
	descIdx, costIdx := -1, -1
	for i, h := range t.Headers {
		switch CanonicalColumn(h) {
		case colDescription:
			if descIdx < 0 {
				descIdx = i
			}
		case colUnitCost:
			if costIdx < 0 {
				costIdx = i
			}
		}
	}
	if descIdx < 0 || costIdx < 0 {
		return nil, 0, ErrMissingColumns
	}

	var items []model.Item
	dropped := 0
	for _, row := range t.Rows {
		cost, err := CleanCost(row[costIdx])
		if err != nil {
			dropped++
			continue
		}
		items = append(items, model.Item{
			Category:    category,
			Description: strings.TrimSpace(row[descIdx]),
			UnitCost:    cost,
			SourceFile:  sourceFile,
		})
	}
	return items, dropped, nil
}

// CanonicalColumn lowercases a header, collapses whitespace runs, and
// resolves known aliases, so "  Item  Description " matches "description".
func CanonicalColumn(header string) string {
	key := strings.Join(strings.Fields(strings.ToLower(header)), " ")
	if canonical, ok := columnAliases[key]; ok {
		return canonical
	}
	return key
}

// CleanCost parses a noisy cost string: everything except digits and "." is
// stripped, and an empty result means zero. "$1,234.56" parses to 1234.56.
// A cleaned string that still is not a number (e.g. "12.34.56") is an error.
func CleanCost(raw string) (decimal.Decimal, error) {
	cleaned := nonCost.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(cleaned)
}
