package accounts

import "github.com/ledgerbook-dev/ledgerbook/internal/model"

// DefaultChart returns the predefined proprietorship chart of accounts.
// All balances start at zero.
func DefaultChart() []model.Account {
	return []model.Account{
		{Number: "1001", Name: "Cash", Type: model.AccountTypeAsset},
		{Number: "1010", Name: "Accounts Receivable", Type: model.AccountTypeAsset},
		{Number: "1020", Name: "Prepaid Expenses", Type: model.AccountTypeAsset},
		{Number: "1030", Name: "Inventory", Type: model.AccountTypeAsset},
		{Number: "1040", Name: "Fixed Assets", Type: model.AccountTypeAsset},
		{Number: "1050", Name: "Accumulated Depreciation", Type: model.AccountTypeAsset},
		{Number: "1060", Name: "Other Assets", Type: model.AccountTypeAsset},
		{Number: "2001", Name: "Accounts Payable", Type: model.AccountTypeLiability},
		{Number: "2010", Name: "Accrued Liabilities", Type: model.AccountTypeLiability},
		{Number: "2020", Name: "Taxes Payable", Type: model.AccountTypeLiability},
		{Number: "2030", Name: "Payroll Payable", Type: model.AccountTypeLiability},
		{Number: "2040", Name: "Notes Payable", Type: model.AccountTypeLiability},
		{Number: "3001", Name: model.OwnersCapital, Type: model.AccountTypeEquity},
		{Number: "3002", Name: model.OwnersDrawing, Type: model.AccountTypeEquity},
		{Number: "4001", Name: "Revenue", Type: model.AccountTypeRevenue},
		{Number: "4010", Name: "Sales Returns and Allowances", Type: model.AccountTypeRevenue},
		{Number: "5001", Name: "Cost of Goods Sold", Type: model.AccountTypeExpense},
		{Number: "5010", Name: "Advertising Expense", Type: model.AccountTypeExpense},
		{Number: "5020", Name: "Bank Fees", Type: model.AccountTypeExpense},
		{Number: "5030", Name: "Depreciation Expense", Type: model.AccountTypeExpense},
		{Number: "5040", Name: "Payroll Tax Expense", Type: model.AccountTypeExpense},
		{Number: "5050", Name: "Rent Expense", Type: model.AccountTypeExpense},
		{Number: "5060", Name: "Supplies Expense", Type: model.AccountTypeExpense},
		{Number: "5070", Name: "Utilities Expense", Type: model.AccountTypeExpense},
		{Number: "5080", Name: "Wages Expense", Type: model.AccountTypeExpense},
		{Number: "6001", Name: "Other Expenses", Type: model.AccountTypeExpense},
	}
}
