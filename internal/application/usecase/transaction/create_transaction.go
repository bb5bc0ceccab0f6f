// Package transaction contains transaction-related use cases.
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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Date            time.Time
	Merchant        string
	Amount          decimal.Decimal
	Currency        string
	Category        string
	AccountID       string
	Type            entity.TransactionType
	IsRecurring     bool
	RecurringPeriod entity.RecurringPeriod
}

// CreateTransactionOutput represents the output of transaction creation.
// Warning is set when the referenced account does not exist: the transaction
// is committed anyway and the balance side effect is skipped.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
	Warning     *domainerror.TransactionError
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	notifier        adapter.Notifier
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	notifier adapter.Notifier,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		notifier:        notifier,
	}
}

// Execute performs the transaction creation. The amount sign is normalized
// from the type, the transaction is prepended to the collection, and the
// linked account balance is adjusted by the signed amount.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income', 'expense' or 'transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if input.IsRecurring && !entity.IsValidRecurringPeriod(input.RecurringPeriod) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRecurringPeriod,
			"recurring period must be 'monthly' or 'yearly'",
			domainerror.ErrInvalidRecurringPeriod,
		)
	}

	txn := entity.NewTransaction(
		input.Date,
		input.Merchant,
		input.Amount,
		input.Currency,
		input.Category,
		input.AccountID,
		input.Type,
		input.IsRecurring,
		input.RecurringPeriod,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	output := &CreateTransactionOutput{Transaction: newTransactionOutput(txn)}

	// The balance side effect is skipped when the account id is dangling;
	// the transaction itself stays committed.
	if err := uc.accountRepo.AdjustBalance(ctx, txn.AccountID, txn.Amount); err != nil {
		if !errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, fmt.Errorf("failed to adjust account balance: %w", err)
		}
		slog.Warn("Transaction references unknown account, balance not adjusted",
			"transactionID", txn.ID,
			"accountID", txn.AccountID,
		)
		output.Warning = domainerror.NewTransactionError(
			domainerror.ErrCodeTxnAccountNotFound,
			"transaction saved but no account matched its account id",
			domainerror.ErrAccountNotFoundForTransaction,
		)
	}

	uc.notifier.Notify("Transaction added successfully", adapter.NotificationLevelSuccess)

	return output, nil
}
