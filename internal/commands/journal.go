package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/book"
	"github.com/ledgerbook-dev/ledgerbook/internal/format"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func newJournalCommand() *cobra.Command {
	var bookDir string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the general journal in chronological order",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(bookDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runJournal(absDir)
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")

	return cmd
}

func runJournal(dir string) error {
	b, err := book.Open(dir)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tACCOUNT\tDEBIT\tCREDIT")
	for _, tx := range b.Journal.All() {
		date := tx.Date.Format(model.DateLayout)
		amount := format.Currency(tx.Amount)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", date, tx.Description, tx.DebitAccount, amount)
		fmt.Fprintf(tw, "%s\t%s\t%s\t\t%s\n", date, tx.Description, tx.CreditAccount, amount)
	}
	return tw.Flush()
}
