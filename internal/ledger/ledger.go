// Package ledger derives the per-account running-balance view from the
// journal and the chart of accounts.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/accounts"
	"github.com/ledgerbook-dev/ledgerbook/internal/journal"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// Row is one line of an account's ledger: a transaction touching the
// account plus the cumulative balance after it.
type Row struct {
	Date          time.Time
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
	Running       decimal.Decimal
}

// Service builds ledger views.
type Service struct {
	chart   *accounts.Service
	journal *journal.Service
}

// NewService creates a ledger view over a chart and journal.
func NewService(chart *accounts.Service, j *journal.Service) *Service {
	return &Service{chart: chart, journal: j}
}

// Build returns the running-balance rows for one account in chronological
// order, so Running is a prefix sum over the account's activity. An
// unknown name fails with accounts.ErrAccountNotFound; a known account
// with no activity yields no rows.
func (s *Service) Build(accountName string) ([]Row, error) {
	acct, ok := s.chart.Resolve(accountName)
	if !ok {
		return nil, fmt.Errorf("building ledger for %q: %w", accountName, accounts.ErrAccountNotFound)
	}

	debitNormal := acct.NormalSide == model.NormalDebit
	running := decimal.Zero

	var rows []Row
	for _, tx := range s.journal.All() {
		if tx.DebitAccount == acct.Name {
			if debitNormal {
				running = running.Add(tx.Amount)
			} else {
				running = running.Sub(tx.Amount)
			}
			rows = append(rows, row(tx, running))
		}
		if tx.CreditAccount == acct.Name {
			if debitNormal {
				running = running.Sub(tx.Amount)
			} else {
				running = running.Add(tx.Amount)
			}
			rows = append(rows, row(tx, running))
		}
	}
	return rows, nil
}

func row(tx model.Transaction, running decimal.Decimal) Row {
	return Row{
		Date:          tx.Date,
		Description:   tx.Description,
		DebitAccount:  tx.DebitAccount,
		CreditAccount: tx.CreditAccount,
		Amount:        tx.Amount,
		Running:       running,
	}
}
