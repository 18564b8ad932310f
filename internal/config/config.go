package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the run configuration filename.
const DefaultFile = "bidmerge.yaml"

// CategoriesFile is the category rules filename.
const CategoriesFile = "categories.yaml"

// Config represents the top-level bidmerge.yaml configuration.
type Config struct {
	InputDir       string `yaml:"input_dir"`
	OutputFile     string `yaml:"output_file"`
	OpenAfterMerge bool   `yaml:"open_after_merge"`
}

// Load reads a bidmerge.yaml file from disk. Fields omitted from the file
// keep their defaults, including open_after_merge.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := *Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the stock configuration for a new workspace.
func Default() *Config {
	return &Config{
		InputDir:       "input_files",
		OutputFile:     "master_items.xlsx",
		OpenAfterMerge: true,
	}
}
