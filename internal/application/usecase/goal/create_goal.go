// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation. Any supplied
// current amount is ignored: goals always start at zero.
type CreateGoalInput struct {
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
	Color        string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	notifier adapter.Notifier
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, notifier adapter.Notifier) *CreateGoalUseCase {
	return &CreateGoalUseCase{goalRepo: goalRepo, notifier: notifier}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			"goal name cannot be empty",
			domainerror.ErrInvalidGoalName,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	goal := entity.NewGoal(input.Name, input.TargetAmount, input.Deadline, input.Color)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	uc.notifier.Notify("Goal created", adapter.NotificationLevelSuccess)

	return &CreateGoalOutput{Goal: goal}, nil
}
