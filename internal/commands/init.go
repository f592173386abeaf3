package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/faturai-dev/faturai/internal/config"
)

func newInitCommand() *cobra.Command {
	var dueDate string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new FaturAI project",
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

			return runInit(absDir, dueDate)
		},
	}

	cmd.Flags().StringVar(&dueDate, "due-date", "", "reference due date of the current statement cycle, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("due-date")

	return cmd
}

func runInit(dir, dueDate string) error {
	cfg := config.Default(dueDate)
	if _, err := cfg.ReferenceDueDate(); err != nil {
		return err
	}

	// Create directory structure.
	dirs := []string{
		"statements",
		filepath.Join("statements", "processed"),
		"exports",
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write faturai.yaml.
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write .gitignore.
	gitignore := "statements/\nexports/\nlogs/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Write statements/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "statements", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Printf("Initialized FaturAI project at %s (due date %s)\n", dir, dueDate)
	return nil
}
