package accounts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func TestNewService_SeedsInOrder(t *testing.T) {
	svc := NewService(DefaultChart())

	all := svc.All()
	require.Len(t, all, 26)
	assert.Equal(t, "Cash", all[0].Name)
	assert.Equal(t, "Other Expenses", all[25].Name)

	for _, a := range all {
		assert.True(t, a.Balance.IsZero(), "seeded account %s starts at zero", a.Name)
	}
}

func TestResolve(t *testing.T) {
	svc := NewService(DefaultChart())

	a, ok := svc.Resolve("Cash")
	require.True(t, ok)
	assert.Equal(t, "1001", a.Number)
	assert.Equal(t, model.NormalDebit, a.NormalSide)

	_, ok = svc.Resolve("cash") // case-sensitive
	assert.False(t, ok)

	_, ok = svc.Resolve("No Such Account")
	assert.False(t, ok)
}

func TestResolve_SpecialAccounts(t *testing.T) {
	svc := NewService(DefaultChart())

	drawing, ok := svc.Resolve(model.OwnersDrawing)
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeEquity, drawing.Type)
	assert.Equal(t, model.NormalDebit, drawing.NormalSide)

	capital, ok := svc.Resolve(model.OwnersCapital)
	require.True(t, ok)
	assert.Equal(t, model.NormalCredit, capital.NormalSide)
}

func TestAdd(t *testing.T) {
	svc := NewService(DefaultChart())

	a, err := svc.Add("1070", "Petty Cash", model.AccountTypeAsset, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, model.NormalDebit, a.NormalSide)

	// Ad hoc accounts list after the seeded chart.
	all := svc.All()
	assert.Equal(t, "Petty Cash", all[len(all)-1].Name)

	got, ok := svc.Resolve("Petty Cash")
	require.True(t, ok)
	assert.Same(t, a, got)
}

func TestAdd_Duplicate(t *testing.T) {
	svc := NewService(DefaultChart())

	_, err := svc.Add("1099", "Cash", model.AccountTypeAsset, decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	assert.Len(t, svc.All(), 26, "failed add must not change the chart")
}

func TestAdd_InvalidType(t *testing.T) {
	svc := NewService(DefaultChart())

	_, err := svc.Add("9001", "Weird", "contra-asset", decimal.Zero)
	require.Error(t, err)

	_, err = svc.Add("9002", "", model.AccountTypeAsset, decimal.Zero)
	require.Error(t, err)
}

func TestByType(t *testing.T) {
	svc := NewService(DefaultChart())

	assert.Len(t, svc.ByType(model.AccountTypeAsset), 7)
	assert.Len(t, svc.ByType(model.AccountTypeLiability), 5)
	assert.Len(t, svc.ByType(model.AccountTypeEquity), 2)
	assert.Len(t, svc.ByType(model.AccountTypeRevenue), 2)
	assert.Len(t, svc.ByType(model.AccountTypeExpense), 10)
}

func TestNames(t *testing.T) {
	svc := NewService(DefaultChart())

	names := svc.Names()
	require.Len(t, names, 26)
	assert.Equal(t, "Cash", names[0])
	assert.Equal(t, "Accounts Receivable", names[1])
}
