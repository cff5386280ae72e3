package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/book"
	"github.com/ledgerbook-dev/ledgerbook/internal/importer"
)

func newImportCommand() *cobra.Command {
	var bookDir string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-post journal entries from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(bookDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runImport(absDir, args[0])
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")

	return cmd
}

func runImport(dir, file string) error {
	b, err := book.Open(dir)
	if err != nil {
		return err
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	rows, err := importer.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}

	// Each row posts independently; bad rows are skipped, not fatal.
	posted := 0
	skipped := 0
	for i, row := range rows {
		if _, err := b.Journal.Post(row.Params()); err != nil {
			slog.Warn("skipping row", "row", i+2, "error", err)
			skipped++
			continue
		}
		posted++
	}

	if posted > 0 {
		message := fmt.Sprintf("import: %s (%d entries)", filepath.Base(file), posted)
		if err := saveAndCommit(b, message); err != nil {
			return err
		}
	}

	fmt.Printf("Imported %d entries (%d skipped) from %s\n", posted, skipped, file)
	return nil
}
