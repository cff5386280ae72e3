package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// Header is the CSV header for chart-of-accounts.csv.
const Header = "account_number,account_name,account_type,balance"

const (
	numFields  = 4
	colNumber  = 0
	colName    = 1
	colType    = 2
	colBalance = 3
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var accts []model.Account
	for i, rec := range records[1:] {
		a, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accts = append(accts, a)
	}
	return accts, nil
}

// WriteAccounts writes chart-of-accounts.csv (including header).
func WriteAccounts(w io.Writer, accts []*model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, a := range accts {
		if err := cw.Write(MarshalAccount(a)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(a *model.Account) []string {
	row := make([]string, numFields)
	row[colNumber] = a.Number
	row[colName] = a.Name
	row[colType] = string(a.Type)
	row[colBalance] = a.Balance.String()
	return row
}

// UnmarshalAccount converts a CSV row to an Account definition.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	accountType := model.AccountType(record[colType])
	if !model.ValidAccountType(accountType) {
		return model.Account{}, fmt.Errorf("unknown account type %q", record[colType])
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	return model.Account{
		Number:  record[colNumber],
		Name:    record[colName],
		Type:    accountType,
		Balance: balance,
	}, nil
}
