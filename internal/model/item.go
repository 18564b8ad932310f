package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Item is one normalized estimating line: a categorized description with a
// unit cost and the file it came from.
type Item struct {
	Category    string
	Description string
	UnitCost    decimal.Decimal
	SourceFile  string
}

// Key identifies an item for deduplication. Unit cost and source file are
// deliberately excluded: two rows describing the same item are duplicates
// even when their prices disagree, and the first one seen wins.
type Key struct {
	Category    string
	Description string
}

// Key returns the dedup key: category plus the lowercased description with
// whitespace runs collapsed to single spaces.
func (i Item) Key() Key {
	return Key{
		Category:    i.Category,
		Description: NormalizeDescription(i.Description),
	}
}

// NormalizeDescription lowercases s and collapses all whitespace runs to a
// single space, trimming the ends.
func NormalizeDescription(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
