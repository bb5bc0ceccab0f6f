package goal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// AddMoneyInput represents the input for adding money to a goal.
type AddMoneyInput struct {
	ID    string
	Delta decimal.Decimal
}

// AddMoneyOutput represents the output of adding money to a goal.
type AddMoneyOutput struct {
	Goal *entity.Goal
}

// AddMoneyUseCase handles incremental goal funding. Contributions may be
// fractional and there is no upper clamp: goals can exceed their target.
type AddMoneyUseCase struct {
	goalRepo adapter.GoalRepository
	notifier adapter.Notifier
}

// NewAddMoneyUseCase creates a new AddMoneyUseCase instance.
func NewAddMoneyUseCase(goalRepo adapter.GoalRepository, notifier adapter.Notifier) *AddMoneyUseCase {
	return &AddMoneyUseCase{goalRepo: goalRepo, notifier: notifier}
}

// Execute adds the delta to the goal's current amount.
func (uc *AddMoneyUseCase) Execute(ctx context.Context, input AddMoneyInput) (*AddMoneyOutput, error) {
	if !input.Delta.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalDelta,
			"contribution amount must be greater than zero",
			domainerror.ErrInvalidGoalDelta,
		)
	}

	existing, err := uc.goalRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	updated := *existing
	updated.CurrentAmount = updated.CurrentAmount.Add(input.Delta)

	if err := uc.goalRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	uc.notifier.Notify("Money added to goal", adapter.NotificationLevelSuccess)

	return &AddMoneyOutput{Goal: &updated}, nil
}
