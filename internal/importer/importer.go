// Package importer parses bulk journal-entry CSVs for batch posting.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ledgerbook-dev/ledgerbook/internal/journal"
)

// Row is one unposted journal entry read from an import file. Fields stay
// raw strings; validation belongs to journal.Post.
type Row struct {
	Date          string
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        string
}

const (
	numFields = 5
	colDate   = 0
	colDesc   = 1
	colDebit  = 2
	colCredit = 3
	colAmount = 4
)

// Parse reads an import CSV with the same column layout as journal.csv
// (date, description, debit_account, credit_account, amount) and returns
// its rows. The header row is required.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, Row{
			Date:          rec[colDate],
			Description:   rec[colDesc],
			DebitAccount:  rec[colDebit],
			CreditAccount: rec[colCredit],
			Amount:        rec[colAmount],
		})
	}
	return rows, nil
}

// Params converts a row into posting parameters.
func (r Row) Params() journal.PostParams {
	return journal.PostParams{
		Date:          r.Date,
		Description:   r.Description,
		DebitAccount:  r.DebitAccount,
		CreditAccount: r.CreditAccount,
		Amount:        r.Amount,
	}
}
