package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/runway-dev/runway/internal/config"
	"github.com/runway-dev/runway/internal/scenario"
)

func newInitCommand() *cobra.Command {
	var title string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create runway.yaml and a sample scenario",
		Args:  cobra.MaximumNArgs(1),
		// init writes runway.yaml, so it must not read one first.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, title, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized runway project at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "name", "", "scenario title (default: the sample's title)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}

func runInit(dir, title string, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	cfg := config.Default()
	scenarioPath := filepath.Join(dir, cfg.Scenario.Path)

	if !force {
		for _, p := range []string{cfgPath, scenarioPath} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", filepath.Base(p))
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", filepath.Base(p), err)
			}
		}
	}

	// Write runway.yaml.
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the sample scenario.
	doc := scenario.Sample()
	if title != "" {
		doc.Title = title
	}
	if err := scenario.Save(scenarioPath, doc); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}

	return nil
}
