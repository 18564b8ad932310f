// Package runlog keeps a CSV history of merge runs under logs/merge-log.csv.
package runlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the merge log.
type Entry struct {
	Timestamp         time.Time
	Mode              string
	FilesProcessed    int
	ItemsRead         int
	DuplicatesRemoved int
	MasterRows        int
	OutputFile        string
}

// Header is the CSV header for merge-log.csv.
const Header = "timestamp,mode,files_processed,items_read,duplicates_removed,master_rows,output_file"

const (
	numFields    = 7
	logDir       = "logs"
	logFile      = "logs/merge-log.csv"
	colTimestamp = 0
	colMode      = 1
	colFiles     = 2
	colItems     = 3
	colDupes     = 4
	colRows      = 5
	colOutput    = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colMode] = e.Mode
	row[colFiles] = strconv.Itoa(e.FilesProcessed)
	row[colItems] = strconv.Itoa(e.ItemsRead)
	row[colDupes] = strconv.Itoa(e.DuplicatesRemoved)
	row[colRows] = strconv.Itoa(e.MasterRows)
	row[colOutput] = e.OutputFile
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	ints := make([]int, 4)
	for i, col := range []int{colFiles, colItems, colDupes, colRows} {
		n, err := strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing count %q: %w", record[col], err)
		}
		ints[i] = n
	}

	return Entry{
		Timestamp:         ts,
		Mode:              record[colMode],
		FilesProcessed:    ints[0],
		ItemsRead:         ints[1],
		DuplicatesRemoved: ints[2],
		MasterRows:        ints[3],
		OutputFile:        record[colOutput],
	}, nil
}

// Append writes an entry to <root>/logs/merge-log.csv, creating the file and
// header if needed.
func Append(root string, e Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening merge log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing log header: %w", err)
		}
	}
	if err := cw.Write(MarshalEntry(e)); err != nil {
		return fmt.Errorf("writing log entry: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <root>/logs/merge-log.csv. A missing log is
// an empty history, not an error.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(root, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening merge log: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = numFields
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading merge log: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
