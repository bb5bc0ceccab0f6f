// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// GoalRepository defines persistence operations for savings goals.
type GoalRepository interface {
	// Create appends a new goal to the collection.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its id.
	FindByID(ctx context.Context, id string) (*entity.Goal, error)

	// FindAll retrieves all goals in insertion order.
	FindAll(ctx context.Context) ([]*entity.Goal, error)

	// Update replaces the stored goal with the given one.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal from the collection.
	Delete(ctx context.Context, id string) error
}
