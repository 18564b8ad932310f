package loader

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVReader reads .csv files. Field counts may vary per row; rows are fitted
// to the header width.
type CSVReader struct{}

// Extensions returns the extensions CSVReader handles.
func (r *CSVReader) Extensions() []string { return []string{".csv"} }

// Read loads a CSV file into a Table. The first record is the header row.
func (r *CSVReader) Read(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening CSV: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("reading CSV %s: %w", path, err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}

	t := Table{Headers: records[0]}
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, fitRow(rec, len(t.Headers)))
	}
	return t, nil
}
