package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction edits. Nil
// fields are left unchanged (shallow merge of provided fields only).
type UpdateTransactionInput struct {
	ID              string
	Date            *time.Time
	Merchant        *string
	Amount          *decimal.Decimal
	Currency        *string
	Category        *string
	AccountID       *string
	Status          *entity.TransactionStatus
	Type            *entity.TransactionType
	IsRecurring     *bool
	RecurringPeriod *entity.RecurringPeriod
}

// UpdateTransactionOutput represents the output of a transaction edit.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
	Warning     *domainerror.TransactionError
}

// UpdateTransactionUseCase handles transaction edit logic, including the
// balance adjustments that keep linked accounts consistent.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	notifier        adapter.Notifier
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	notifier adapter.Notifier,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		notifier:        notifier,
	}
}

// Execute performs the transaction edit. When the edit moves the transaction
// to a different account, the old account is credited back the original
// amount and the new account is debited the new amount, so both balances
// stay consistent with their transaction sets.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	updated := *existing
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"transaction date cannot be empty",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		updated.Date = entity.TruncateToDay(*input.Date)
	}
	if input.Merchant != nil {
		updated.Merchant = *input.Merchant
	}
	if input.Currency != nil {
		updated.Currency = *input.Currency
	}
	if input.Category != nil {
		updated.Category = *input.Category
	}
	if input.AccountID != nil {
		updated.AccountID = *input.AccountID
	}
	if input.Status != nil {
		updated.Status = *input.Status
	}
	if input.Type != nil {
		if !entity.IsValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'income', 'expense' or 'transfer'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		updated.Type = *input.Type
	}
	if input.IsRecurring != nil {
		updated.IsRecurring = *input.IsRecurring
	}
	if input.RecurringPeriod != nil {
		if *input.RecurringPeriod != "" && !entity.IsValidRecurringPeriod(*input.RecurringPeriod) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidRecurringPeriod,
				"recurring period must be 'monthly' or 'yearly'",
				domainerror.ErrInvalidRecurringPeriod,
			)
		}
		updated.RecurringPeriod = *input.RecurringPeriod
	}
	if input.Amount != nil {
		updated.Amount = *input.Amount
	}
	// Re-normalize against the final type so the sign invariant survives
	// edits that change either the amount or the type.
	updated.Amount = entity.NormalizeAmount(updated.Amount, updated.Type)

	if err := uc.transactionRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	output := &UpdateTransactionOutput{Transaction: newTransactionOutput(&updated)}

	if existing.AccountID != updated.AccountID {
		// Account switch: reverse the contribution on the old account and
		// apply the new amount to the new account.
		uc.adjustTolerant(ctx, existing.AccountID, existing.Amount.Neg(), updated.ID, output)
		uc.adjustTolerant(ctx, updated.AccountID, updated.Amount, updated.ID, output)
	} else if !updated.Amount.Equal(existing.Amount) {
		uc.adjustTolerant(ctx, updated.AccountID, updated.Amount.Sub(existing.Amount), updated.ID, output)
	}

	uc.notifier.Notify("Transaction updated", adapter.NotificationLevelSuccess)

	return output, nil
}

// adjustTolerant applies a balance delta, downgrading a missing account to a
// warning on the output instead of failing the edit.
func (uc *UpdateTransactionUseCase) adjustTolerant(
	ctx context.Context,
	accountID string,
	delta decimal.Decimal,
	transactionID string,
	output *UpdateTransactionOutput,
) {
	if err := uc.accountRepo.AdjustBalance(ctx, accountID, delta); err != nil {
		if !errors.Is(err, domainerror.ErrAccountNotFound) {
			slog.Error("Failed to adjust account balance",
				"transactionID", transactionID,
				"accountID", accountID,
				"error", err,
			)
			return
		}
		slog.Warn("Transaction edit references unknown account, balance not adjusted",
			"transactionID", transactionID,
			"accountID", accountID,
		)
		output.Warning = domainerror.NewTransactionError(
			domainerror.ErrCodeTxnAccountNotFound,
			"transaction updated but no account matched its account id",
			domainerror.ErrAccountNotFoundForTransaction,
		)
	}
}
