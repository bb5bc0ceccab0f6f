package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ledgerly/backend/internal/application/adapter"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID string
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Warning *domainerror.TransactionError
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	notifier        adapter.Notifier
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	notifier adapter.Notifier,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		notifier:        notifier,
	}
}

// Execute removes the transaction and reverses its contribution to the
// linked account's balance.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	output := &DeleteTransactionOutput{}

	if err := uc.accountRepo.AdjustBalance(ctx, existing.AccountID, existing.Amount.Neg()); err != nil {
		if !errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, fmt.Errorf("failed to adjust account balance: %w", err)
		}
		slog.Warn("Deleted transaction references unknown account, balance not adjusted",
			"transactionID", existing.ID,
			"accountID", existing.AccountID,
		)
		output.Warning = domainerror.NewTransactionError(
			domainerror.ErrCodeTxnAccountNotFound,
			"transaction deleted but no account matched its account id",
			domainerror.ErrAccountNotFoundForTransaction,
		)
	}

	uc.notifier.Notify("Transaction deleted", adapter.NotificationLevelSuccess)

	return output, nil
}
