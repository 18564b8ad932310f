// Package merge consolidates normalized items from many estimating files
// into one deduplicated master table.
package merge

import (
	"github.com/bidmerge-dev/bidmerge/internal/model"
)

// Mode selects how a run treats an existing master file.
type Mode string

const (
	// ModeOverwrite rebuilds the master file from the input files alone.
	ModeOverwrite Mode = "overwrite"
	// ModeAppend unions new items into the existing master file.
	ModeAppend Mode = "append"
)

// ModeFromChoice maps the interactive menu choice to a Mode: "1" selects
// overwrite, anything else selects append.
func ModeFromChoice(choice string) Mode {
	if choice == "1" {
		return ModeOverwrite
	}
	return ModeAppend
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeOverwrite || m == ModeAppend
}

// Dedup keeps the first occurrence of each item key in table order and
// returns the number of later duplicates dropped. Earlier rows always win;
// unit cost and source file never influence the outcome.
func Dedup(items []model.Item) ([]model.Item, int) {
	seen := make(map[model.Key]struct{}, len(items))
	kept := make([]model.Item, 0, len(items))
	for _, item := range items {
		key := item.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, item)
	}
	return kept, len(items) - len(kept)
}
