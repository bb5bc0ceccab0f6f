// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// Create appends a new account to the collection.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its id.
	FindByID(ctx context.Context, id string) (*entity.Account, error)

	// FindAll retrieves all accounts in insertion order.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// Update replaces the stored account with the given one.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account. Transactions referencing it are left in
	// place with a dangling account id.
	Delete(ctx context.Context, id string) error

	// AdjustBalance applies a signed delta to the account's running balance.
	// Returns domainerror.ErrAccountNotFound when the id matches no account.
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error
}
