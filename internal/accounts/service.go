package accounts

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// ErrAccountNotFound is returned when a name does not resolve.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateAccount is returned when adding a name that already resolves.
var ErrDuplicateAccount = errors.New("account already exists")

// Service is the chart of accounts: the registry of all known accounts.
// Accounts are keyed by name (case-sensitive) and listed in insertion
// order, seeded accounts first.
type Service struct {
	accounts []*model.Account
	byName   map[string]*model.Account
}

// NewService creates a chart of accounts from seed definitions.
func NewService(seed []model.Account) *Service {
	s := &Service{byName: make(map[string]*model.Account, len(seed))}
	for _, def := range seed {
		a := model.NewAccount(def.Number, def.Name, def.Type, def.Balance)
		s.accounts = append(s.accounts, a)
		s.byName[a.Name] = a
	}
	return s
}

// Resolve returns the account with the given name.
func (s *Service) Resolve(name string) (*model.Account, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// Exists reports whether an account name resolves.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Add creates an account and appends it to the chart. The normal side is
// resolved from type and name at creation.
func (s *Service) Add(number, name string, accountType model.AccountType, balance decimal.Decimal) (*model.Account, error) {
	if name == "" {
		return nil, fmt.Errorf("adding account: name must not be empty")
	}
	if !model.ValidAccountType(accountType) {
		return nil, fmt.Errorf("adding account %q: unknown type %q", name, accountType)
	}
	if _, ok := s.byName[name]; ok {
		return nil, fmt.Errorf("adding account %q: %w", name, ErrDuplicateAccount)
	}

	a := model.NewAccount(number, name, accountType, balance)
	s.accounts = append(s.accounts, a)
	s.byName[name] = a
	return a, nil
}

// All returns all accounts in insertion order.
func (s *Service) All() []*model.Account {
	return s.accounts
}

// ByType returns all accounts of the given type, in insertion order.
func (s *Service) ByType(accountType model.AccountType) []*model.Account {
	var result []*model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Names returns all account names in insertion order.
func (s *Service) Names() []string {
	names := make([]string, len(s.accounts))
	for i, a := range s.accounts {
		names[i] = a.Name
	}
	return names
}
