// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// Zero-valued fields are ignored.
type TransactionFilter struct {
	AccountID string
	Category  string
	Type      entity.TransactionType
	Recurring *bool
}

// TransactionRepository defines persistence operations for transactions.
// The collection keeps newest-first order: new transactions are prepended.
type TransactionRepository interface {
	// Create prepends a new transaction to the collection.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its id.
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)

	// FindAll retrieves all transactions, newest first.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update replaces the stored transaction with the given one, keeping its position.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the collection.
	Delete(ctx context.Context, id string) error
}
