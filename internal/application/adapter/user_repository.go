// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// UserRepository defines persistence operations for the singleton user.
type UserRepository interface {
	// Get retrieves the user.
	Get(ctx context.Context) (*entity.User, error)

	// Update replaces the stored user with the given one.
	Update(ctx context.Context, user *entity.User) error
}
