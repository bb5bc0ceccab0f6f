package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	store *Store
}

// NewAccountRepository creates a new account repository over the store.
func NewAccountRepository(store *Store) adapter.AccountRepository {
	return &accountRepository{store: store}
}

// Create appends a new account and persists the collection.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = append(s.accounts, account)
	return s.saveAccounts(ctx)
}

// FindByID retrieves an account by its id.
func (r *accountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.ID == id {
			copied := *account
			return &copied, nil
		}
	}
	return nil, domainerror.ErrAccountNotFound
}

// FindAll retrieves all accounts in insertion order.
func (r *accountRepository) FindAll(ctx context.Context) ([]*entity.Account, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]*entity.Account, len(s.accounts))
	for i, account := range s.accounts {
		copied := *account
		accounts[i] = &copied
	}
	return accounts, nil
}

// Update replaces the stored account and persists the collection.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.accounts {
		if existing.ID == account.ID {
			copied := *account
			s.accounts[i] = &copied
			return s.saveAccounts(ctx)
		}
	}
	return domainerror.ErrAccountNotFound
}

// Delete removes an account and persists the collection. Transactions
// referencing the account are left untouched.
func (r *accountRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, account := range s.accounts {
		if account.ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return s.saveAccounts(ctx)
		}
	}
	return domainerror.ErrAccountNotFound
}

// AdjustBalance applies a signed delta to the account's running balance and
// persists the collection.
func (r *accountRepository) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.ID == id {
			account.Balance = account.Balance.Add(delta)
			return s.saveAccounts(ctx)
		}
	}
	return domainerror.ErrAccountNotFound
}
