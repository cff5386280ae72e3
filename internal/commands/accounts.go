package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/book"
	"github.com/ledgerbook-dev/ledgerbook/internal/format"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func newAccountsCommand() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Chart of accounts operations",
	}
	accountsCmd.AddCommand(newAccountsListCommand())
	accountsCmd.AddCommand(newAccountsAddCommand())
	return accountsCmd
}

func newAccountsListCommand() *cobra.Command {
	var bookDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts with current balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(bookDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runAccountsList(absDir)
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")

	return cmd
}

func runAccountsList(dir string) error {
	b, err := book.Open(dir)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tACCOUNT\tTYPE\tBALANCE")
	for _, a := range b.Accounts.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Number, a.Name, a.Type, format.Accounting(a.Balance))
	}
	return tw.Flush()
}

func newAccountsAddCommand() *cobra.Command {
	var bookDir, number, name, accountType, balance string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account to the chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(bookDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runAccountsAdd(absDir, number, name, accountType, balance)
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")
	cmd.Flags().StringVar(&number, "number", "", "account number")
	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	cmd.Flags().StringVar(&accountType, "type", "", "account type: asset, liability, equity, revenue, expense (required)")
	cmd.Flags().StringVar(&balance, "balance", "0", "opening balance")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runAccountsAdd(dir, number, name, accountType, balance string) error {
	b, err := book.Open(dir)
	if err != nil {
		return err
	}

	opening, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("parsing balance %q: %w", balance, err)
	}

	a, err := b.Accounts.Add(number, name, model.AccountType(accountType), opening)
	if err != nil {
		return err
	}

	if err := saveAndCommit(b, "accounts: add "+name); err != nil {
		return err
	}

	fmt.Printf("Added %s account %q with balance %s\n", a.Type, a.Name, format.Currency(a.Balance))
	return nil
}
