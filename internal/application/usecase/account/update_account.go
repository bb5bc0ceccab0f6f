package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account edits. Nil fields are
// left unchanged.
type UpdateAccountInput struct {
	ID          string
	Name        *string
	Type        *entity.AccountType
	Balance     *decimal.Decimal
	Currency    *string
	Institution *string
}

// UpdateAccountOutput represents the output of an account edit.
type UpdateAccountOutput struct {
	Account *AccountOutput
}

// UpdateAccountUseCase handles account edit logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	notifier    adapter.Notifier
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository, notifier adapter.Notifier) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepo: accountRepo, notifier: notifier}
}

// Execute applies a shallow merge of the provided fields onto the account.
// Setting Balance here overwrites the running balance directly, without any
// compensating transaction.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	existing, err := uc.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	updated := *existing
	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeInvalidAccountName,
				"account name cannot be empty",
				domainerror.ErrInvalidAccountName,
			)
		}
		updated.Name = *input.Name
	}
	if input.Type != nil {
		if !entity.IsValidAccountType(*input.Type) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeInvalidAccountType,
				"account type must be 'bank', 'cash', 'credit' or 'investment'",
				domainerror.ErrInvalidAccountType,
			)
		}
		updated.Type = *input.Type
	}
	if input.Balance != nil {
		updated.Balance = *input.Balance
	}
	if input.Currency != nil {
		updated.Currency = *input.Currency
	}
	if input.Institution != nil {
		updated.Institution = *input.Institution
	}

	if err := uc.accountRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	uc.notifier.Notify("Account updated", adapter.NotificationLevelSuccess)

	return &UpdateAccountOutput{Account: newAccountOutput(&updated)}, nil
}
