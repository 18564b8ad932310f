package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidmerge-dev/bidmerge/internal/category"
	"github.com/bidmerge-dev/bidmerge/internal/config"
	"github.com/bidmerge-dev/bidmerge/internal/master"
)

// setupWorkspace chdirs into a fresh workspace with category rules and one
// electrical bid file, returning its path.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	rules := category.Rules{{Name: "Electrical", Keywords: []string{"electrical"}}}
	require.NoError(t, category.Save(config.CategoriesFile, rules))

	require.NoError(t, os.MkdirAll("input_files", 0o755))
	csv := "Item Description,Unit Cost\n12AWG wire,$1.25\n12AWG wire,$1.30\n"
	require.NoError(t, os.WriteFile(filepath.Join("input_files", "ElectricalBid.csv"), []byte(csv), 0o644))

	return dir
}

func TestMerge_OverwriteFlag(t *testing.T) {
	setupWorkspace(t)

	_, err := runCommand(t, "", "merge", "--mode", "overwrite", "--no-open")
	require.NoError(t, err)

	items, err := master.Read("master_items.xlsx")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Electrical", items[0].Category)
	assert.Equal(t, "12AWG wire", items[0].Description)
	assert.Equal(t, "1.25", items[0].UnitCost.String())
}

func TestMerge_PromptSelectsOverwrite(t *testing.T) {
	setupWorkspace(t)

	out, err := runCommand(t, "1\n", "merge", "--no-open")
	require.NoError(t, err)
	assert.Contains(t, out, "Select run mode:")
	assert.FileExists(t, "master_items.xlsx")
}

func TestMerge_PromptDefaultsToAppend(t *testing.T) {
	setupWorkspace(t)

	// First run builds the master; the second uses a junk prompt answer,
	// which means append, so the row count holds steady.
	_, err := runCommand(t, "", "merge", "--mode", "overwrite", "--no-open")
	require.NoError(t, err)

	_, err = runCommand(t, "yes please\n", "merge", "--no-open")
	require.NoError(t, err)

	items, err := master.Read("master_items.xlsx")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMerge_UnknownModeFlag(t *testing.T) {
	setupWorkspace(t)

	_, err := runCommand(t, "", "merge", "--mode", "upsert", "--no-open")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestMerge_MissingCategoriesFatal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := runCommand(t, "", "merge", "--mode", "overwrite", "--no-open")
	require.Error(t, err)
	assert.NoFileExists(t, "master_items.xlsx")
}

func TestMerge_FlagsOverrideConfig(t *testing.T) {
	dir := setupWorkspace(t)
	outPath := filepath.Join(dir, "custom.xlsx")

	_, err := runCommand(t, "", "merge",
		"--mode", "overwrite",
		"--input", "input_files",
		"--output", outPath,
		"--no-open",
	)
	require.NoError(t, err)
	assert.FileExists(t, outPath)
	assert.NoFileExists(t, "master_items.xlsx")
}
