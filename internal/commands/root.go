package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/book"
	"github.com/ledgerbook-dev/ledgerbook/internal/buildinfo"
	"github.com/ledgerbook-dev/ledgerbook/internal/gitops"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "ledgerbook",
		Short:   "Double-entry bookkeeping for a sole proprietorship",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(),
		newPostCommand(),
		newAccountsCommand(),
		newTransactionsCommand(),
		newJournalCommand(),
		newLedgerCommand(),
		newBalanceCommand(),
		newImportCommand(),
	)

	return rootCmd
}

// saveAndCommit writes the book to disk and, when auto-commit is on,
// records a git commit. A failed commit is a warning, not an error: the
// books on disk are already up to date.
func saveAndCommit(b *book.Book, message string) error {
	if err := b.Save(); err != nil {
		return err
	}

	if !b.Config.Git.AutoCommit || !gitops.IsRepo(b.Dir) {
		return nil
	}

	author := gitops.Author{Name: b.Config.Git.AuthorName, Email: b.Config.Git.AuthorEmail}
	hash, err := gitops.CommitAll(b.Dir, message, author)
	if err != nil {
		slog.Warn("auto-commit failed", "error", err)
		return nil
	}
	slog.Debug("committed", "hash", hash, "message", message)
	return nil
}
