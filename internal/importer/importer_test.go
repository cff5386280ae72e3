package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `date,description,debit_account,credit_account,amount
2024-01-01,Initial investment,Cash,Owner's Capital,10000
2024-01-05,Office rent,Rent Expense,Cash,1200.50
`

func TestParse(t *testing.T) {
	rows, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-01-01", rows[0].Date)
	assert.Equal(t, "Initial investment", rows[0].Description)
	assert.Equal(t, "Cash", rows[0].DebitAccount)
	assert.Equal(t, "Owner's Capital", rows[0].CreditAccount)
	assert.Equal(t, "10000", rows[0].Amount)
	assert.Equal(t, "1200.50", rows[1].Amount)
}

func TestParse_HeaderOnly(t *testing.T) {
	rows, err := Parse(strings.NewReader("date,description,debit_account,credit_account,amount\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParse_WrongColumnCount(t *testing.T) {
	_, err := Parse(strings.NewReader("date,description\n2024-01-01,x\n"))
	require.Error(t, err)
}

func TestParams(t *testing.T) {
	row := Row{
		Date:          "2024-01-01",
		Description:   "entry",
		DebitAccount:  "Cash",
		CreditAccount: "Revenue",
		Amount:        "42",
	}
	p := row.Params()
	assert.Equal(t, row.Date, p.Date)
	assert.Equal(t, row.Description, p.Description)
	assert.Equal(t, row.DebitAccount, p.DebitAccount)
	assert.Equal(t, row.CreditAccount, p.CreditAccount)
	assert.Equal(t, row.Amount, p.Amount)
}
