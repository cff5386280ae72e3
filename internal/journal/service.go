package journal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/accounts"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// Validation failures for Post. Every failure leaves the journal and all
// account balances untouched.
var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidAmount  = errors.New("amount must be a number greater than zero")
	ErrMissingAccount = errors.New("debit and credit accounts must both be selected")
	ErrSameAccount    = errors.New("debit and credit accounts must differ")
)

// Service owns the chronological sequence of posted transactions.
// Ordering is by date ascending; equal dates keep their relative posting
// order.
type Service struct {
	chart *accounts.Service
	txs   []model.Transaction
}

// NewService creates a journal over a chart of accounts.
func NewService(chart *accounts.Service) *Service {
	return &Service{chart: chart}
}

// PostParams holds the raw inputs for posting a journal entry. Date and
// Amount arrive as text; Post owns their validation.
type PostParams struct {
	Date          string // 2006-01-02
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        string
}

// Post validates params, applies the debit and credit to the two accounts,
// and appends the transaction in chronological order. Checks fail fast and
// no state changes until all of them pass.
func (s *Service) Post(params PostParams) (model.Transaction, error) {
	date, err := time.Parse(model.DateLayout, params.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %q is not a %s date", ErrInvalidDate, params.Date, model.DateLayout)
	}

	amount, err := decimal.NewFromString(params.Amount)
	if err != nil || !amount.IsPositive() {
		// Non-numeric and non-positive report the same failure.
		return model.Transaction{}, fmt.Errorf("%w: got %q", ErrInvalidAmount, params.Amount)
	}

	if params.DebitAccount == "" || params.CreditAccount == "" {
		return model.Transaction{}, ErrMissingAccount
	}
	if params.DebitAccount == params.CreditAccount {
		return model.Transaction{}, fmt.Errorf("%w: %q", ErrSameAccount, params.DebitAccount)
	}

	debit, ok := s.chart.Resolve(params.DebitAccount)
	if !ok {
		return model.Transaction{}, fmt.Errorf("debit account %q: %w", params.DebitAccount, accounts.ErrAccountNotFound)
	}
	credit, ok := s.chart.Resolve(params.CreditAccount)
	if !ok {
		return model.Transaction{}, fmt.Errorf("credit account %q: %w", params.CreditAccount, accounts.ErrAccountNotFound)
	}

	debit.ApplyDebit(amount)
	credit.ApplyCredit(amount)

	tx := model.Transaction{
		Date:          date,
		Description:   params.Description,
		DebitAccount:  debit.Name,
		CreditAccount: credit.Name,
		Amount:        amount,
	}
	s.txs = append(s.txs, tx)

	// Stable: entries on the same date stay in posting order.
	sort.SliceStable(s.txs, func(i, j int) bool {
		return s.txs[i].Date.Before(s.txs[j].Date)
	})

	return tx, nil
}

// Append restores a transaction without validation or balance effects.
// Used only when loading a saved journal whose balances are already
// reflected in the chart.
func (s *Service) Append(tx model.Transaction) {
	s.txs = append(s.txs, tx)
}

// All returns the transactions in chronological order.
func (s *Service) All() []model.Transaction {
	out := make([]model.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// Len returns the number of posted transactions.
func (s *Service) Len() int {
	return len(s.txs)
}

// Filter returns transactions matching query, most recent first. An empty
// query matches everything; otherwise a transaction matches when the query
// is a case-insensitive substring of its formatted date, description,
// debit account, or credit account.
func (s *Service) Filter(query string) []model.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []model.Transaction
	for i := len(s.txs) - 1; i >= 0; i-- {
		tx := s.txs[i]
		if q == "" || matches(tx, q) {
			out = append(out, tx)
		}
	}
	return out
}

func matches(tx model.Transaction, q string) bool {
	return strings.Contains(tx.Date.Format(model.DateLayout), q) ||
		strings.Contains(strings.ToLower(tx.Description), q) ||
		strings.Contains(strings.ToLower(tx.DebitAccount), q) ||
		strings.Contains(strings.ToLower(tx.CreditAccount), q)
}
