// Package user contains use cases for the singleton local user.
package user

import (
	"context"
	"fmt"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// GetUserOutput represents the output of retrieving the user.
type GetUserOutput struct {
	User *entity.User
}

// GetUserUseCase handles user retrieval.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

// Execute retrieves the user.
func (uc *GetUserUseCase) Execute(ctx context.Context) (*GetUserOutput, error) {
	u, err := uc.userRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &GetUserOutput{User: u}, nil
}
