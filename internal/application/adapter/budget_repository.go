// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// BudgetRepository defines persistence operations for budgets.
type BudgetRepository interface {
	// Create appends a new budget to the collection.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its id.
	FindByID(ctx context.Context, id string) (*entity.Budget, error)

	// FindAll retrieves all budgets in insertion order.
	FindAll(ctx context.Context) ([]*entity.Budget, error)

	// Update replaces the stored budget with the given one.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the collection.
	Delete(ctx context.Context, id string) error
}
