package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// ValidAccountType reports whether t is one of the five recognized types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// NormalSide is the side of a posting on which an account's balance grows.
type NormalSide string

const (
	NormalDebit  NormalSide = "debit"
	NormalCredit NormalSide = "credit"
)

// Two accounts get their normal side by name rather than by type: the
// proprietorship drawing account sits under equity but behaves like an
// asset/expense account. The capital account follows the equity default;
// it is named here because the balance sheet reads both by literal name.
const (
	OwnersCapital = "Owner's Capital"
	OwnersDrawing = "Owner's Drawing"
)

// Account is a named ledger account with a running balance. Balances move
// only through ApplyDebit/ApplyCredit.
type Account struct {
	Number     string
	Name       string // unique, case-sensitive key
	Type       AccountType
	NormalSide NormalSide
	Balance    decimal.Decimal
}

// NewAccount creates an account with its normal side resolved from type
// and name. The side is fixed at creation; posting never re-derives it.
func NewAccount(number, name string, accountType AccountType, balance decimal.Decimal) *Account {
	return &Account{
		Number:     number,
		Name:       name,
		Type:       accountType,
		NormalSide: NormalSideFor(accountType, name),
		Balance:    balance,
	}
}

// NormalSideFor returns the normal balance side for a type/name pair.
func NormalSideFor(accountType AccountType, name string) NormalSide {
	if name == OwnersDrawing {
		return NormalDebit
	}
	switch accountType {
	case AccountTypeAsset, AccountTypeExpense:
		return NormalDebit
	default:
		return NormalCredit
	}
}

// ApplyDebit posts the debit side of a transaction to this account.
func (a *Account) ApplyDebit(amount decimal.Decimal) {
	if a.NormalSide == NormalDebit {
		a.Balance = a.Balance.Add(amount)
	} else {
		a.Balance = a.Balance.Sub(amount)
	}
}

// ApplyCredit posts the credit side of a transaction to this account.
func (a *Account) ApplyCredit(amount decimal.Decimal) {
	if a.NormalSide == NormalCredit {
		a.Balance = a.Balance.Add(amount)
	} else {
		a.Balance = a.Balance.Sub(amount)
	}
}
