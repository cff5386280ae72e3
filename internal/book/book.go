// Package book ties the chart of accounts, the journal, and the config
// together as one aggregate rooted at a directory, and owns the
// save/load round trip.
package book

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ledgerbook-dev/ledgerbook/internal/accounts"
	"github.com/ledgerbook-dev/ledgerbook/internal/config"
	"github.com/ledgerbook-dev/ledgerbook/internal/journal"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

const (
	chartFile   = "chart-of-accounts.csv"
	journalFile = "journal.csv"
)

// Book is an open set of books: config plus the in-memory chart and
// journal. Mutations go through Accounts and Journal; Save writes the
// full state back to disk.
type Book struct {
	Dir      string
	Config   *config.Config
	Accounts *accounts.Service
	Journal  *journal.Service
}

// Init creates a new book at dir: the config file, a seeded chart with
// zero balances, and an empty journal.
func Init(dir string, cfg *config.Config) (*Book, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating book dir: %w", err)
	}

	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
		return nil, fmt.Errorf("book already initialized at %s", dir)
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return nil, err
	}

	chart := accounts.NewService(seedChart(cfg))
	b := &Book{
		Dir:      dir,
		Config:   cfg,
		Accounts: chart,
		Journal:  journal.NewService(chart),
	}
	if err := b.Save(); err != nil {
		return nil, err
	}
	return b, nil
}

// Open loads a book from dir. Balances, transaction fields, and
// chronological order come back exactly as saved. A restored book with no
// accounts is re-seeded with the predefined chart.
func Open(dir string) (*Book, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, err
	}

	defs, err := readChart(filepath.Join(dir, chartFile))
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		slog.Debug("no accounts on disk, seeding predefined chart", "dir", dir)
		defs = seedChart(cfg)
	}
	chart := accounts.NewService(defs)

	j := journal.NewService(chart)
	txs, err := readJournal(filepath.Join(dir, journalFile))
	if err != nil {
		return nil, err
	}
	for _, tx := range txs {
		// Saved balances already include these postings.
		j.Append(tx)
	}

	slog.Debug("book opened", "dir", dir, "accounts", len(chart.All()), "transactions", j.Len())

	return &Book{Dir: dir, Config: cfg, Accounts: chart, Journal: j}, nil
}

// Save writes the chart and journal to disk.
func (b *Book) Save() error {
	f, err := os.Create(filepath.Join(b.Dir, chartFile))
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	if err := accounts.WriteAccounts(f, b.Accounts.All()); err != nil {
		f.Close()
		return fmt.Errorf("writing chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing chart file: %w", err)
	}

	f, err = os.Create(filepath.Join(b.Dir, journalFile))
	if err != nil {
		return fmt.Errorf("creating journal file: %w", err)
	}
	if err := journal.WriteTransactions(f, b.Journal.All()); err != nil {
		f.Close()
		return fmt.Errorf("writing journal: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing journal file: %w", err)
	}
	return nil
}

// seedChart returns the configured custom chart, or the predefined chart
// when the config does not declare one.
func seedChart(cfg *config.Config) []model.Account {
	if len(cfg.Chart) == 0 {
		return accounts.DefaultChart()
	}
	defs := make([]model.Account, 0, len(cfg.Chart))
	for _, sa := range cfg.Chart {
		defs = append(defs, model.Account{
			Number: sa.Number,
			Name:   sa.Name,
			Type:   model.AccountType(sa.Type),
		})
	}
	return defs
}

func readChart(path string) ([]model.Account, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening chart %s: %w", path, err)
	}
	defer f.Close()

	defs, err := accounts.ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart %s: %w", path, err)
	}
	return defs, nil
}

func readJournal(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	txs, err := journal.ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return txs, nil
}
