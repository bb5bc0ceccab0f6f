package persistence

import (
	"context"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	store *Store
}

// NewGoalRepository creates a new goal repository over the store.
func NewGoalRepository(store *Store) adapter.GoalRepository {
	return &goalRepository{store: store}
}

// Create appends a new goal and persists the collection.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *goal
	s.goals = append(s.goals, &copied)
	return s.saveGoals(ctx)
}

// FindByID retrieves a goal by its id.
func (r *goalRepository) FindByID(ctx context.Context, id string) (*entity.Goal, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, goal := range s.goals {
		if goal.ID == id {
			copied := *goal
			return &copied, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

// FindAll retrieves all goals in insertion order.
func (r *goalRepository) FindAll(ctx context.Context) ([]*entity.Goal, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := make([]*entity.Goal, len(s.goals))
	for i, goal := range s.goals {
		copied := *goal
		goals[i] = &copied
	}
	return goals, nil
}

// Update replaces the stored goal and persists the collection.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.goals {
		if existing.ID == goal.ID {
			copied := *goal
			s.goals[i] = &copied
			return s.saveGoals(ctx)
		}
	}
	return domainerror.ErrGoalNotFound
}

// Delete removes a goal and persists the collection.
func (r *goalRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, goal := range s.goals {
		if goal.ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return s.saveGoals(ctx)
		}
	}
	return domainerror.ErrGoalNotFound
}
