package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestNormalSideFor(t *testing.T) {
	tests := []struct {
		name        string
		accountType AccountType
		accountName string
		want        NormalSide
	}{
		{"asset", AccountTypeAsset, "Cash", NormalDebit},
		{"expense", AccountTypeExpense, "Rent Expense", NormalDebit},
		{"liability", AccountTypeLiability, "Accounts Payable", NormalCredit},
		{"revenue", AccountTypeRevenue, "Revenue", NormalCredit},
		{"capital follows equity default", AccountTypeEquity, OwnersCapital, NormalCredit},
		{"drawing overrides equity default", AccountTypeEquity, OwnersDrawing, NormalDebit},
		{"generic equity", AccountTypeEquity, "Partner Equity", NormalCredit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalSideFor(tt.accountType, tt.accountName))
		})
	}
}

func TestApplyDebitCredit_DebitNormal(t *testing.T) {
	cash := NewAccount("1001", "Cash", AccountTypeAsset, decimal.Zero)

	cash.ApplyDebit(dec("100"))
	assert.True(t, cash.Balance.Equal(dec("100")))

	cash.ApplyCredit(dec("30"))
	assert.True(t, cash.Balance.Equal(dec("70")))
}

func TestApplyDebitCredit_CreditNormal(t *testing.T) {
	payable := NewAccount("2001", "Accounts Payable", AccountTypeLiability, decimal.Zero)

	payable.ApplyCredit(dec("500"))
	assert.True(t, payable.Balance.Equal(dec("500")))

	payable.ApplyDebit(dec("200"))
	assert.True(t, payable.Balance.Equal(dec("300")))
}

func TestApply_InitialInvestment(t *testing.T) {
	cash := NewAccount("1001", "Cash", AccountTypeAsset, decimal.Zero)
	capital := NewAccount("3001", OwnersCapital, AccountTypeEquity, decimal.Zero)

	cash.ApplyDebit(dec("1000"))
	capital.ApplyCredit(dec("1000"))

	assert.True(t, cash.Balance.Equal(dec("1000")))
	assert.True(t, capital.Balance.Equal(dec("1000")))
}

func TestApply_DrawingIncreasesOnDebit(t *testing.T) {
	drawing := NewAccount("3002", OwnersDrawing, AccountTypeEquity, decimal.Zero)
	cash := NewAccount("1001", "Cash", AccountTypeAsset, dec("1000"))

	drawing.ApplyDebit(dec("200"))
	cash.ApplyCredit(dec("200"))

	assert.True(t, drawing.Balance.Equal(dec("200")), "drawing is debit-normal despite its equity type")
	assert.True(t, cash.Balance.Equal(dec("800")))
}

func TestValidAccountType(t *testing.T) {
	for _, typ := range []AccountType{
		AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense,
	} {
		assert.True(t, ValidAccountType(typ))
	}
	assert.False(t, ValidAccountType("contra-asset"))
	assert.False(t, ValidAccountType(""))
}
