package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXReader reads the first sheet of .xlsx workbooks.
type XLSXReader struct{}

// Extensions returns the extensions XLSXReader handles.
func (r *XLSXReader) Extensions() []string { return []string{".xlsx"} }

// Read loads the first sheet of an XLSX file into a Table. The first row is
// the header row.
func (r *XLSXReader) Read(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening XLSX %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Table{}, nil
	}

	t := Table{Headers: rows[0]}
	for _, row := range rows[1:] {
		t.Rows = append(t.Rows, fitRow(row, len(t.Headers)))
	}
	return t, nil
}
