package user

import (
	"context"
	"fmt"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// UpdateUserInput represents the input for user edits. Nil fields are left
// unchanged.
type UpdateUserInput struct {
	Name      *string
	Email     *string
	Currency  *string
	AvatarURL *string
}

// UpdateUserOutput represents the output of a user edit.
type UpdateUserOutput struct {
	User *entity.User
}

// UpdateUserUseCase handles edits to the singleton user.
type UpdateUserUseCase struct {
	userRepo adapter.UserRepository
	notifier adapter.Notifier
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository, notifier adapter.Notifier) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, notifier: notifier}
}

// Execute applies a shallow merge of the provided fields onto the user.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	existing, err := uc.userRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	updated := *existing
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Email != nil {
		updated.Email = *input.Email
	}
	if input.Currency != nil {
		updated.Currency = *input.Currency
	}
	if input.AvatarURL != nil {
		updated.AvatarURL = *input.AvatarURL
	}

	if err := uc.userRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.notifier.Notify("Profile updated", adapter.NotificationLevelSuccess)

	return &UpdateUserOutput{User: &updated}, nil
}
