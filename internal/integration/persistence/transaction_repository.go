package persistence

import (
	"context"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new transaction repository over the store.
func NewTransactionRepository(store *Store) adapter.TransactionRepository {
	return &transactionRepository{store: store}
}

// Create prepends a new transaction, keeping newest-first display order, and
// persists the collection.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *transaction
	s.transactions = append([]*entity.Transaction{&copied}, s.transactions...)
	return s.saveTransactions(ctx)
}

// FindByID retrieves a transaction by its id.
func (r *transactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, transaction := range s.transactions {
		if transaction.ID == id {
			copied := *transaction
			return &copied, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

// FindAll retrieves all transactions, newest first.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := make([]*entity.Transaction, len(s.transactions))
	for i, transaction := range s.transactions {
		copied := *transaction
		transactions[i] = &copied
	}
	return transactions, nil
}

// FindByFilter retrieves transactions matching the filter, newest first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var transactions []*entity.Transaction
	for _, transaction := range s.transactions {
		if filter.AccountID != "" && transaction.AccountID != filter.AccountID {
			continue
		}
		if filter.Category != "" && transaction.Category != filter.Category {
			continue
		}
		if filter.Type != "" && transaction.Type != filter.Type {
			continue
		}
		if filter.Recurring != nil && transaction.IsRecurring != *filter.Recurring {
			continue
		}
		copied := *transaction
		transactions = append(transactions, &copied)
	}
	return transactions, nil
}

// Update replaces the stored transaction in place and persists the collection.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.transactions {
		if existing.ID == transaction.ID {
			copied := *transaction
			s.transactions[i] = &copied
			return s.saveTransactions(ctx)
		}
	}
	return domainerror.ErrTransactionNotFound
}

// Delete removes a transaction and persists the collection.
func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, transaction := range s.transactions {
		if transaction.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return s.saveTransactions(ctx)
		}
	}
	return domainerror.ErrTransactionNotFound
}
