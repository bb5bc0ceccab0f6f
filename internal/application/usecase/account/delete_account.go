package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ledgerly/backend/internal/application/adapter"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	ID string
}

// DeleteAccountOutput represents the output of account deletion.
// OrphanedTransactions counts transactions left referencing the removed
// account id; they are kept in place, not cascaded.
type DeleteAccountOutput struct {
	OrphanedTransactions int
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	notifier        adapter.Notifier
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	notifier adapter.Notifier,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute removes the account. Transactions referencing it are deliberately
// left in place with a dangling account id; the orphan count is reported so
// callers can surface it.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	if _, err := uc.accountRepo.FindByID(ctx, input.ID); err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if err := uc.accountRepo.Delete(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	output := &DeleteAccountOutput{}
	orphans, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{AccountID: input.ID})
	if err == nil {
		output.OrphanedTransactions = len(orphans)
		if len(orphans) > 0 {
			slog.Warn("Deleted account still referenced by transactions",
				"accountID", input.ID,
				"transactionCount", len(orphans),
			)
		}
	}

	uc.notifier.Notify("Account removed", adapter.NotificationLevelSuccess)

	return output, nil
}
