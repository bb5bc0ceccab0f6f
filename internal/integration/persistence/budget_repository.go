package persistence

import (
	"context"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	store *Store
}

// NewBudgetRepository creates a new budget repository over the store.
func NewBudgetRepository(store *Store) adapter.BudgetRepository {
	return &budgetRepository{store: store}
}

// Create appends a new budget and persists the collection.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *budget
	s.budgets = append(s.budgets, &copied)
	return s.saveBudgets(ctx)
}

// FindByID retrieves a budget by its id.
func (r *budgetRepository) FindByID(ctx context.Context, id string) (*entity.Budget, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, budget := range s.budgets {
		if budget.ID == id {
			copied := *budget
			return &copied, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

// FindAll retrieves all budgets in insertion order.
func (r *budgetRepository) FindAll(ctx context.Context) ([]*entity.Budget, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := make([]*entity.Budget, len(s.budgets))
	for i, budget := range s.budgets {
		copied := *budget
		budgets[i] = &copied
	}
	return budgets, nil
}

// Update replaces the stored budget and persists the collection.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.budgets {
		if existing.ID == budget.ID {
			copied := *budget
			s.budgets[i] = &copied
			return s.saveBudgets(ctx)
		}
	}
	return domainerror.ErrBudgetNotFound
}

// Delete removes a budget and persists the collection.
func (r *budgetRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, budget := range s.budgets {
		if budget.ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			return s.saveBudgets(ctx)
		}
	}
	return domainerror.ErrBudgetNotFound
}
