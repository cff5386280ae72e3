package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/book"
	"github.com/ledgerbook-dev/ledgerbook/internal/format"
	"github.com/ledgerbook-dev/ledgerbook/internal/journal"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func newPostCommand() *cobra.Command {
	var bookDir string
	var params journal.PostParams

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(bookDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runPost(absDir, params)
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")
	cmd.Flags().StringVar(&params.Date, "date", time.Now().Format(model.DateLayout), "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&params.Description, "description", "", "transaction description")
	cmd.Flags().StringVar(&params.DebitAccount, "debit", "", "account to debit (required)")
	cmd.Flags().StringVar(&params.CreditAccount, "credit", "", "account to credit (required)")
	cmd.Flags().StringVar(&params.Amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("debit")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runPost(dir string, params journal.PostParams) error {
	b, err := book.Open(dir)
	if err != nil {
		return err
	}

	tx, err := b.Journal.Post(params)
	if err != nil {
		return err
	}

	if err := saveAndCommit(b, "post: "+tx.Description); err != nil {
		return err
	}

	fmt.Printf("Posted %s  debit %s / credit %s  %s\n",
		tx.Date.Format(model.DateLayout), tx.DebitAccount, tx.CreditAccount,
		format.Currency(tx.Amount))
	return nil
}
