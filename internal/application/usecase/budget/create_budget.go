// Package budget contains budget-related use cases, including the spend
// resolution against the current period window.
package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	Category string
	Limit    decimal.Decimal
	Period   entity.BudgetPeriod
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	notifier   adapter.Notifier
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, notifier adapter.Notifier) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{budgetRepo: budgetRepo, notifier: notifier}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			"budget category cannot be empty",
			domainerror.ErrInvalidBudgetCategory,
		)
	}

	if !input.Limit.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"budget limit must be greater than zero",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	if !entity.IsValidBudgetPeriod(input.Period) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"budget period must be 'monthly' or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	budget := entity.NewBudget(input.Category, input.Limit, input.Period)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	uc.notifier.Notify("Budget created", adapter.NotificationLevelSuccess)

	return &CreateBudgetOutput{Budget: budget}, nil
}
