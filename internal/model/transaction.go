package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the textual date format for transaction input and display.
const DateLayout = "2006-01-02"

// Transaction is one posted journal entry: a balanced debit/credit pair
// referencing two accounts by name. Immutable once posted; corrections
// are made by posting an offsetting entry.
type Transaction struct {
	Date          time.Time // calendar date, no time component
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal // strictly positive
}
