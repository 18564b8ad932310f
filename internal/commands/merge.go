package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bidmerge-dev/bidmerge/internal/category"
	"github.com/bidmerge-dev/bidmerge/internal/config"
	"github.com/bidmerge-dev/bidmerge/internal/loader"
	"github.com/bidmerge-dev/bidmerge/internal/log"
	"github.com/bidmerge-dev/bidmerge/internal/merge"
	"github.com/bidmerge-dev/bidmerge/internal/viewer"
)

func newMergeCommand() *cobra.Command {
	var mode string
	var inputDir string
	var outputFile string
	var configPath string
	var categoriesPath string
	var noOpen bool

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge input spreadsheets into the master file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if inputDir != "" {
				cfg.InputDir = inputDir
			}
			if outputFile != "" {
				cfg.OutputFile = outputFile
			}
			if noOpen {
				cfg.OpenAfterMerge = false
			}

			// Rules load before any file processing so a bad config aborts
			// the run with nothing touched.
			rules, err := category.Load(categoriesPath)
			if err != nil {
				return err
			}

			m := merge.Mode(mode)
			if mode == "" {
				m = promptMode(cmd)
			} else if !m.Valid() {
				return fmt.Errorf("unknown mode %q (want overwrite or append)", mode)
			}

			logger := log.New(log.Config{Component: "merge"})
			var opener viewer.Opener = viewer.ExecOpener{}
			if !cfg.OpenAfterMerge {
				opener = viewer.Nop{}
			}

			svc := merge.NewService(cfg, rules, loader.DefaultRegistry(), logger, opener, ".")
			_, err = svc.Run(m)
			return err
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "run mode: overwrite or append (prompts when omitted)")
	cmd.Flags().StringVar(&inputDir, "input", "", "input directory (default from config)")
	cmd.Flags().StringVar(&outputFile, "output", "", "master file path (default from config)")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "run configuration file")
	cmd.Flags().StringVar(&categoriesPath, "categories", config.CategoriesFile, "category rules file")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "do not open the master file after merging")

	return cmd
}

// loadConfig reads bidmerge.yaml when present; a missing file just means
// defaults.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// promptMode asks the operator to choose a run mode. Any answer other than
// "1" selects append.
func promptMode(cmd *cobra.Command) merge.Mode {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Select run mode:")
	fmt.Fprintln(out, "1 = Overwrite (rebuild master file)")
	fmt.Fprintln(out, "2 = Append (add only new unique items)")
	fmt.Fprint(out, "Enter 1 or 2: ")

	choice, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	return merge.ModeFromChoice(strings.TrimSpace(choice))
}
