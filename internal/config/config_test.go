package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := &Config{
		InputDir:       "bids",
		OutputFile:     "consolidated.xlsx",
		OpenAfterMerge: true,
	}

	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "input_files", cfg.InputDir)
	assert.Equal(t, "master_items.xlsx", cfg.OutputFile)
	assert.True(t, cfg.OpenAfterMerge)
}

func TestLoad_EmptyFieldsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("open_after_merge: false\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "input_files", got.InputDir)
	assert.Equal(t, "master_items.xlsx", got.OutputFile)
	assert.False(t, got.OpenAfterMerge)
}

func TestLoad_OmittedOpenAfterMergeStaysTrue(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("input_dir: bids\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bids", got.InputDir)
	assert.Equal(t, "master_items.xlsx", got.OutputFile)
	assert.True(t, got.OpenAfterMerge)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "input_dir: input_files")
	assert.Contains(t, contents, "output_file: master_items.xlsx")
	assert.Contains(t, contents, "open_after_merge: true")
}
