// Package report derives financial statements from the chart of accounts.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/accounts"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// Line is one named amount on a statement.
type Line struct {
	Name   string
	Amount decimal.Decimal
}

// EquityLineName labels the equity roll-up on the balance sheet.
const EquityLineName = "Owner's Equity (Ending Balance)"

// BalanceSheet aggregates the chart of accounts into the accounting
// identity: Assets = Liabilities + Equity. It is a pure function of
// current balances; with every posting a balanced debit/credit pair, the
// two sides stay equal.
type BalanceSheet struct {
	chart *accounts.Service
}

// NewBalanceSheet creates a balance sheet over a chart of accounts.
func NewBalanceSheet(chart *accounts.Service) *BalanceSheet {
	return &BalanceSheet{chart: chart}
}

// TotalAssets sums the balances of all asset accounts.
func (b *BalanceSheet) TotalAssets() decimal.Decimal {
	sum := decimal.Zero
	for _, a := range b.chart.ByType(model.AccountTypeAsset) {
		sum = sum.Add(a.Balance)
	}
	return sum
}

// ProprietorshipEquity is capital minus drawings plus net income
// (revenue minus expense). Capital and drawing are read by literal
// account name and count as zero when absent.
func (b *BalanceSheet) ProprietorshipEquity() decimal.Decimal {
	capital := decimal.Zero
	drawing := decimal.Zero
	revenue := decimal.Zero
	expense := decimal.Zero

	for _, a := range b.chart.All() {
		switch {
		case a.Name == model.OwnersCapital:
			capital = a.Balance
		case a.Name == model.OwnersDrawing:
			drawing = a.Balance
		case a.Type == model.AccountTypeRevenue:
			revenue = revenue.Add(a.Balance)
		case a.Type == model.AccountTypeExpense:
			expense = expense.Add(a.Balance)
		}
	}

	netIncome := revenue.Sub(expense)
	return capital.Add(netIncome).Sub(drawing)
}

// TotalLiabilitiesAndEquity sums all liability balances plus
// proprietorship equity.
func (b *BalanceSheet) TotalLiabilitiesAndEquity() decimal.Decimal {
	sum := decimal.Zero
	for _, a := range b.chart.ByType(model.AccountTypeLiability) {
		sum = sum.Add(a.Balance)
	}
	return sum.Add(b.ProprietorshipEquity())
}

// AssetLines returns one line per asset account, in chart order.
func (b *BalanceSheet) AssetLines() []Line {
	var lines []Line
	for _, a := range b.chart.ByType(model.AccountTypeAsset) {
		lines = append(lines, Line{Name: a.Name, Amount: a.Balance})
	}
	return lines
}

// LiabilityAndEquityLines returns one line per liability account followed
// by the equity roll-up line.
func (b *BalanceSheet) LiabilityAndEquityLines() []Line {
	var lines []Line
	for _, a := range b.chart.ByType(model.AccountTypeLiability) {
		lines = append(lines, Line{Name: a.Name, Amount: a.Balance})
	}
	lines = append(lines, Line{Name: EquityLineName, Amount: b.ProprietorshipEquity()})
	return lines
}
