// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// CreateAccountInput represents the input for linking a new account.
type CreateAccountInput struct {
	Name        string
	Type        entity.AccountType
	Balance     decimal.Decimal
	Currency    string
	Institution string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *AccountOutput
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	notifier    adapter.Notifier
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository, notifier adapter.Notifier) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepo: accountRepo, notifier: notifier}
}

// Execute links a new account with the supplied opening balance.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountName,
			"account name cannot be empty",
			domainerror.ErrInvalidAccountName,
		)
	}

	if !entity.IsValidAccountType(input.Type) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be 'bank', 'cash', 'credit' or 'investment'",
			domainerror.ErrInvalidAccountType,
		)
	}

	acc := entity.NewAccount(input.Name, input.Type, input.Balance, input.Currency, input.Institution)

	if err := uc.accountRepo.Create(ctx, acc); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	uc.notifier.Notify("Account linked successfully", adapter.NotificationLevelSuccess)

	return &CreateAccountOutput{Account: newAccountOutput(acc)}, nil
}
