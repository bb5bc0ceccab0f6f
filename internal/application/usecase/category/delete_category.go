package category

import (
	"context"
	"fmt"

	"github.com/ledgerly/backend/internal/application/adapter"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for removing a category.
type DeleteCategoryInput struct {
	Name string
}

// DeleteCategoryUseCase handles category removal. Removal is unconditional:
// transactions and budgets referencing the name keep the now-untracked
// string.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	notifier     adapter.Notifier
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, notifier adapter.Notifier) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo, notifier: notifier}
}

// Execute removes the category from the vocabulary.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if input.Name == "" {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryName,
			"category name cannot be empty",
			domainerror.ErrInvalidCategoryName,
		)
	}

	if err := uc.categoryRepo.Remove(ctx, input.Name); err != nil {
		return fmt.Errorf("failed to remove category: %w", err)
	}

	uc.notifier.Notify("Category removed", adapter.NotificationLevelSuccess)

	return nil
}
