package goal

import (
	"context"
	"fmt"

	"github.com/ledgerly/backend/internal/application/adapter"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	ID string
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
	notifier adapter.Notifier
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, notifier adapter.Notifier) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{goalRepo: goalRepo, notifier: notifier}
}

// Execute removes the goal.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if _, err := uc.goalRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if err := uc.goalRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	uc.notifier.Notify("Goal deleted", adapter.NotificationLevelSuccess)

	return nil
}
