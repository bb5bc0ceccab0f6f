// Package maintenance contains housekeeping use cases.
package maintenance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ledgerly/backend/internal/application/adapter"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// ResetDataInput represents the input for a data reset. Confirm must be set
// explicitly; the reset is destructive and never implied.
type ResetDataInput struct {
	Confirm bool
}

// ResetDataUseCase wipes all collections and reseeds the demo data.
type ResetDataUseCase struct {
	resetter adapter.DataResetter
	notifier adapter.Notifier
}

// NewResetDataUseCase creates a new ResetDataUseCase instance.
func NewResetDataUseCase(resetter adapter.DataResetter, notifier adapter.Notifier) *ResetDataUseCase {
	return &ResetDataUseCase{resetter: resetter, notifier: notifier}
}

// Execute performs the reset when confirmed.
func (uc *ResetDataUseCase) Execute(ctx context.Context, input ResetDataInput) error {
	if !input.Confirm {
		return domainerror.ErrResetNotConfirmed
	}

	if err := uc.resetter.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset data: %w", err)
	}

	slog.Info("All data reset to demo dataset")
	uc.notifier.Notify("All data has been reset", adapter.NotificationLevelSuccess)

	return nil
}
