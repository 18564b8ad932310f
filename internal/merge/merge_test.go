package merge

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidmerge-dev/bidmerge/internal/model"
)

func item(category, desc, cost, source string) model.Item {
	return model.Item{
		Category:    category,
		Description: desc,
		UnitCost:    decimal.RequireFromString(cost),
		SourceFile:  source,
	}
}

func TestModeFromChoice(t *testing.T) {
	assert.Equal(t, ModeOverwrite, ModeFromChoice("1"))
	assert.Equal(t, ModeAppend, ModeFromChoice("2"))
	assert.Equal(t, ModeAppend, ModeFromChoice(""))
	assert.Equal(t, ModeAppend, ModeFromChoice("x"))
}

func TestModeValid(t *testing.T) {
	assert.True(t, ModeOverwrite.Valid())
	assert.True(t, ModeAppend.Valid())
	assert.False(t, Mode("upsert").Valid())
}

func TestDedup_FirstWins(t *testing.T) {
	items := []model.Item{
		item("Electrical", "12AWG wire", "1.25", "a.csv"),
		item("Electrical", "12awg  WIRE", "1.30", "b.csv"),
		item("Electrical", "EMT conduit", "3.10", "a.csv"),
	}

	kept, removed := Dedup(items)
	assert.Equal(t, 1, removed)
	require.Len(t, kept, 2)
	assert.Equal(t, "12AWG wire", kept[0].Description)
	assert.Equal(t, "1.25", kept[0].UnitCost.String())
	assert.Equal(t, "a.csv", kept[0].SourceFile)
	assert.Equal(t, "EMT conduit", kept[1].Description)
}

func TestDedup_CategorySeparatesKeys(t *testing.T) {
	items := []model.Item{
		item("Electrical", "tape", "1", "a.csv"),
		item("Plumbing", "tape", "2", "b.csv"),
	}

	kept, removed := Dedup(items)
	assert.Zero(t, removed)
	assert.Len(t, kept, 2)
}

func TestDedup_PreservesOrder(t *testing.T) {
	items := []model.Item{
		item("A", "one", "1", "f"),
		item("B", "two", "2", "f"),
		item("A", "three", "3", "f"),
		item("A", "one", "9", "g"),
	}

	kept, removed := Dedup(items)
	assert.Equal(t, 1, removed)
	descs := []string{kept[0].Description, kept[1].Description, kept[2].Description}
	assert.Equal(t, []string{"one", "two", "three"}, descs)
}

func TestDedup_Empty(t *testing.T) {
	kept, removed := Dedup(nil)
	assert.Empty(t, kept)
	assert.Zero(t, removed)
}
