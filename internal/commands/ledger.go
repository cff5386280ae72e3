package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/book"
	"github.com/ledgerbook-dev/ledgerbook/internal/format"
	"github.com/ledgerbook-dev/ledgerbook/internal/ledger"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func newLedgerCommand() *cobra.Command {
	var bookDir string

	cmd := &cobra.Command{
		Use:   "ledger <account>",
		Short: "Show one account's activity with running balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(bookDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runLedger(absDir, args[0])
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")

	return cmd
}

func runLedger(dir, accountName string) error {
	b, err := book.Open(dir)
	if err != nil {
		return err
	}

	rows, err := ledger.NewService(b.Accounts, b.Journal).Build(accountName)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tDEBIT ACCOUNT\tCREDIT ACCOUNT\tAMOUNT\tRUNNING BALANCE")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Date.Format(model.DateLayout), row.Description,
			row.DebitAccount, row.CreditAccount,
			format.Currency(row.Amount), format.Accounting(row.Running))
	}
	return tw.Flush()
}
