// Package master reads and writes the consolidated master spreadsheet.
package master

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/bidmerge-dev/bidmerge/internal/loader"
	"github.com/bidmerge-dev/bidmerge/internal/model"
	"github.com/bidmerge-dev/bidmerge/internal/normalize"
)

// SheetName is the single sheet of the master workbook.
const SheetName = "Items"

// Headers is the fixed column order of the master file.
var Headers = []string{"category", "description", "unit cost", "source file"}

// widthPadding is added to the longest cell text when sizing a column.
const widthPadding = 2

// Write serializes items to an XLSX file at path, overwriting any existing
// file. Columns are sized to fit their longest cell. Sizing is cosmetic and
// never fails the write.
func Write(path string, items []model.Item) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SheetName)

	header := make([]interface{}, len(Headers))
	widths := make([]int, len(Headers))
	for i, h := range Headers {
		header[i] = h
		widths[i] = utf8.RuneCountInString(h)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i, item := range items {
		cells := []interface{}{
			item.Category,
			item.Description,
			item.UnitCost.InexactFloat64(),
			item.SourceFile,
		}
		texts := []string{
			item.Category,
			item.Description,
			item.UnitCost.String(),
			item.SourceFile,
		}
		// Widths count characters, not bytes, so non-ASCII text sizes right.
		for c, text := range texts {
			if n := utf8.RuneCountInString(text); n > widths[c] {
				widths[c] = n
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	for c, w := range widths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			continue
		}
		_ = f.SetColWidth(SheetName, col, col, float64(w+widthPadding))
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving master file: %w", err)
	}
	return nil
}

// Read loads an existing master file back into items, matching the four
// fixed columns case-insensitively.
func Read(path string) ([]model.Item, error) {
	rd := &loader.XLSXReader{}
	t, err := rd.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading master file: %w", err)
	}

	idx := make(map[string]int, len(Headers))
	for i, h := range t.Headers {
		key := normalize.CanonicalColumn(h)
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	for _, h := range Headers {
		if _, ok := idx[h]; !ok {
			return nil, fmt.Errorf("master file %s missing column %q", path, h)
		}
	}

	items := make([]model.Item, 0, len(t.Rows))
	for i, row := range t.Rows {
		cost, err := normalize.CleanCost(row[idx["unit cost"]])
		if err != nil {
			return nil, fmt.Errorf("master file row %d: parsing unit cost %q: %w", i+2, row[idx["unit cost"]], err)
		}
		items = append(items, model.Item{
			Category:    row[idx["category"]],
			Description: row[idx["description"]],
			UnitCost:    cost,
			SourceFile:  row[idx["source file"]],
		})
	}
	return items, nil
}
