package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget edits. Nil fields are
// left unchanged.
type UpdateBudgetInput struct {
	ID       string
	Category *string
	Limit    *decimal.Decimal
	Period   *entity.BudgetPeriod
}

// UpdateBudgetOutput represents the output of a budget edit.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget edit logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	notifier   adapter.Notifier
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, notifier adapter.Notifier) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{budgetRepo: budgetRepo, notifier: notifier}
}

// Execute applies a shallow merge of the provided fields onto the budget.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	existing, err := uc.budgetRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	updated := *existing
	if input.Category != nil {
		if *input.Category == "" {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetCategory,
				"budget category cannot be empty",
				domainerror.ErrInvalidBudgetCategory,
			)
		}
		updated.Category = *input.Category
	}
	if input.Limit != nil {
		if !input.Limit.IsPositive() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetLimit,
				"budget limit must be greater than zero",
				domainerror.ErrInvalidBudgetLimit,
			)
		}
		updated.Limit = *input.Limit
	}
	if input.Period != nil {
		if !entity.IsValidBudgetPeriod(*input.Period) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"budget period must be 'monthly' or 'yearly'",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		updated.Period = *input.Period
	}

	if err := uc.budgetRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	uc.notifier.Notify("Budget updated", adapter.NotificationLevelSuccess)

	return &UpdateBudgetOutput{Budget: &updated}, nil
}
