package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/book"
	"github.com/ledgerbook-dev/ledgerbook/internal/format"
	"github.com/ledgerbook-dev/ledgerbook/internal/report"
)

func newBalanceCommand() *cobra.Command {
	var bookDir string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the balance sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(bookDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runBalance(absDir)
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")

	return cmd
}

func runBalance(dir string) error {
	b, err := book.Open(dir)
	if err != nil {
		return err
	}

	sheet := report.NewBalanceSheet(b.Accounts)
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ASSETS\t")
	for _, line := range sheet.AssetLines() {
		fmt.Fprintf(tw, "%s\t%s\n", line.Name, format.Accounting(line.Amount))
	}
	fmt.Fprintf(tw, "Total Assets\t%s\n", format.Accounting(sheet.TotalAssets()))

	fmt.Fprintln(tw, "\t")
	fmt.Fprintln(tw, "LIABILITIES AND EQUITY\t")
	for _, line := range sheet.LiabilityAndEquityLines() {
		fmt.Fprintf(tw, "%s\t%s\n", line.Name, format.Accounting(line.Amount))
	}
	fmt.Fprintf(tw, "Total Liabilities & Equity\t%s\n", format.Accounting(sheet.TotalLiabilitiesAndEquity()))

	return tw.Flush()
}
