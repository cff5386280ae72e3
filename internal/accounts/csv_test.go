package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestWriteReadAccounts_RoundTrip(t *testing.T) {
	svc := NewService(DefaultChart())

	cash, ok := svc.Resolve("Cash")
	require.True(t, ok)
	cash.ApplyDebit(dec("1234.56"))

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, svc.All()))

	defs, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, defs, 26)

	// Order and balances survive the round trip.
	assert.Equal(t, "Cash", defs[0].Name)
	assert.True(t, defs[0].Balance.Equal(dec("1234.56")))
	assert.Equal(t, "Other Expenses", defs[25].Name)
	assert.True(t, defs[25].Balance.IsZero())
}

func TestReadAccounts_Empty(t *testing.T) {
	defs, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestUnmarshalAccount_UnknownType(t *testing.T) {
	_, err := UnmarshalAccount([]string{"1001", "Cash", "cash-like", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account type")
}

func TestUnmarshalAccount_BadBalance(t *testing.T) {
	_, err := UnmarshalAccount([]string{"1001", "Cash", "asset", "lots"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing balance")
}

func TestMarshalAccount(t *testing.T) {
	a := model.NewAccount("2001", "Accounts Payable", model.AccountTypeLiability, dec("15.50"))
	row := MarshalAccount(a)
	assert.Equal(t, []string{"2001", "Accounts Payable", "liability", "15.5"}, row)
}
