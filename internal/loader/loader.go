// Package loader finds and reads input spreadsheets (CSV and XLSX) as raw
// tables, without any domain interpretation.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Table is one loaded spreadsheet: a header row plus data rows. Rows are
// padded or truncated to the header length by readers.
type Table struct {
	Headers []string
	Rows    [][]string
}

// FileInfo describes one input file found by Scan.
type FileInfo struct {
	Name string // base name with extension
	Stem string // base name without extension
	Path string
}

// Reader loads one spreadsheet format into a Table.
type Reader interface {
	Read(path string) (Table, error)
	Extensions() []string
}

// Registry holds readers keyed by file extension.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader for each of its extensions. Panics on duplicates.
func (r *Registry) Register(rd Reader) {
	for _, ext := range rd.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.readers[key]; ok {
			panic("duplicate reader extension: " + key)
		}
		r.readers[key] = rd
	}
}

// Get returns the reader for an extension (with leading dot), or nil.
func (r *Registry) Get(ext string) Reader {
	return r.readers[strings.ToLower(ext)]
}

// DefaultRegistry returns a registry with the built-in CSV and XLSX readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{})
	r.Register(&XLSXReader{})
	return r
}

// Scan returns the input spreadsheets in dir, in directory order. A missing
// dir is created empty rather than treated as an error. Excel lock files
// (names starting with "~$") and subdirectories are skipped.
func Scan(dir string, reg *Registry) ([]FileInfo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating input dir: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if reg.Get(ext) == nil {
			continue
		}
		files = append(files, FileInfo{
			Name: name,
			Stem: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}
	return files, nil
}

// Load reads one scanned file through the registry.
func Load(f FileInfo, reg *Registry) (Table, error) {
	ext := strings.ToLower(filepath.Ext(f.Name))
	rd := reg.Get(ext)
	if rd == nil {
		return Table{}, fmt.Errorf("no reader for %s", f.Name)
	}
	return rd.Read(f.Path)
}

// fitRow pads or truncates row to width.
func fitRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	fitted := make([]string, width)
	copy(fitted, row)
	return fitted
}
