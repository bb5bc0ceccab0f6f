package persistence

import (
	"context"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	store *Store
}

// NewUserRepository creates a new user repository over the store.
func NewUserRepository(store *Store) adapter.UserRepository {
	return &userRepository{store: store}
}

// Get retrieves the singleton user.
func (r *userRepository) Get(ctx context.Context) (*entity.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *s.user
	return &copied, nil
}

// Update replaces the stored user and persists it.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *user
	s.user = &copied
	return s.saveUser(ctx)
}
