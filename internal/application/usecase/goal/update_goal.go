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

// UpdateGoalInput represents the input for goal edits. Nil fields are left
// unchanged. ClearDeadline removes the deadline; it wins over Deadline.
type UpdateGoalInput struct {
	ID            string
	Name          *string
	TargetAmount  *decimal.Decimal
	Deadline      *time.Time
	ClearDeadline bool
	Color         *string
}

// UpdateGoalOutput represents the output of a goal edit.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal edit logic. The current amount is not
// editable here; it only moves through the add-money operation.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	notifier adapter.Notifier
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, notifier adapter.Notifier) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{goalRepo: goalRepo, notifier: notifier}
}

// Execute applies a shallow merge of the provided fields onto the goal.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	existing, err := uc.goalRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	updated := *existing
	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalName,
				"goal name cannot be empty",
				domainerror.ErrInvalidGoalName,
			)
		}
		updated.Name = *input.Name
	}
	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		updated.TargetAmount = *input.TargetAmount
	}
	if input.ClearDeadline {
		updated.Deadline = nil
	} else if input.Deadline != nil {
		d := entity.TruncateToDay(*input.Deadline)
		updated.Deadline = &d
	}
	if input.Color != nil {
		updated.Color = *input.Color
	}

	if err := uc.goalRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	uc.notifier.Notify("Goal updated", adapter.NotificationLevelSuccess)

	return &UpdateGoalOutput{Goal: &updated}, nil
}
