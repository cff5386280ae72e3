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

func newTransactionsCommand() *cobra.Command {
	var bookDir string

	cmd := &cobra.Command{
		Use:   "transactions [query]",
		Short: "List transactions, most recent first, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			absDir, err := filepath.Abs(bookDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runTransactions(absDir, query)
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")

	return cmd
}

func runTransactions(dir, query string) error {
	b, err := book.Open(dir)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tDEBIT ACCOUNT\tCREDIT ACCOUNT\tAMOUNT")
	for _, tx := range b.Journal.Filter(query) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			tx.Date.Format(model.DateLayout), tx.Description,
			tx.DebitAccount, tx.CreditAccount, format.Currency(tx.Amount))
	}
	return tw.Flush()
}
