package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestWriteReadTransactions_RoundTrip(t *testing.T) {
	txs := []model.Transaction{
		{Date: date(2024, 1, 1), Description: "Initial investment", DebitAccount: "Cash", CreditAccount: "Owner's Capital", Amount: dec("1000")},
		{Date: date(2024, 1, 1), Description: "Same-day entry", DebitAccount: "Rent Expense", CreditAccount: "Cash", Amount: dec("500.25")},
		{Date: date(2024, 2, 15), Description: "Sale, cash", DebitAccount: "Cash", CreditAccount: "Revenue", Amount: dec("75.10")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txs))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// File order is journal order; every field survives.
	for i := range txs {
		assert.True(t, got[i].Date.Equal(txs[i].Date))
		assert.Equal(t, txs[i].Description, got[i].Description)
		assert.Equal(t, txs[i].DebitAccount, got[i].DebitAccount)
		assert.Equal(t, txs[i].CreditAccount, got[i].CreditAccount)
		assert.True(t, got[i].Amount.Equal(txs[i].Amount))
	}
}

func TestReadTransactions_Empty(t *testing.T) {
	got, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnmarshalTransaction_BadDate(t *testing.T) {
	_, err := UnmarshalTransaction([]string{"01/15/2024", "desc", "Cash", "Revenue", "10"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestUnmarshalTransaction_BadAmount(t *testing.T) {
	_, err := UnmarshalTransaction([]string{"2024-01-15", "desc", "Cash", "Revenue", "ten"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}
