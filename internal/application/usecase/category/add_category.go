// Package category contains category vocabulary use cases.
package category

import (
	"context"
	"fmt"

	"github.com/ledgerly/backend/internal/application/adapter"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// AddCategoryInput represents the input for adding a category.
type AddCategoryInput struct {
	Name string
}

// AddCategoryOutput represents the output of adding a category. Added is
// false when the name was already present and the call was a no-op.
type AddCategoryOutput struct {
	Added bool
}

// AddCategoryUseCase handles category addition. Adding is idempotent on a
// case-sensitive exact match.
type AddCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	notifier     adapter.Notifier
}

// NewAddCategoryUseCase creates a new AddCategoryUseCase instance.
func NewAddCategoryUseCase(categoryRepo adapter.CategoryRepository, notifier adapter.Notifier) *AddCategoryUseCase {
	return &AddCategoryUseCase{categoryRepo: categoryRepo, notifier: notifier}
}

// Execute appends the category unless it is already present.
func (uc *AddCategoryUseCase) Execute(ctx context.Context, input AddCategoryInput) (*AddCategoryOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryName,
			"category name cannot be empty",
			domainerror.ErrInvalidCategoryName,
		)
	}

	exists, err := uc.categoryRepo.Exists(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if exists {
		return &AddCategoryOutput{Added: false}, nil
	}

	if err := uc.categoryRepo.Add(ctx, input.Name); err != nil {
		return nil, fmt.Errorf("failed to add category: %w", err)
	}

	uc.notifier.Notify("Category added", adapter.NotificationLevelSuccess)

	return &AddCategoryOutput{Added: true}, nil
}
