package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bidmerge-dev/bidmerge/internal/category"
	"github.com/bidmerge-dev/bidmerge/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a bidmerge workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir)
		},
	}

	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	cfg := config.Default()

	dirs := []string{cfg.InputDir, "logs"}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.DefaultFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Starter rules are a template for the operator to edit; never clobber
	// an existing set.
	catPath := filepath.Join(dir, config.CategoriesFile)
	if _, err := os.Stat(catPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.CategoriesFile, dir)
	}
	if err := category.Save(catPath, category.Default()); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, cfg.InputDir, ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized bidmerge workspace at %s\n", dir)
	return nil
}
