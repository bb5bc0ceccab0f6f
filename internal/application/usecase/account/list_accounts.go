package account

import (
	"context"
	"fmt"

	"github.com/ledgerly/backend/internal/application/adapter"
)

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*AccountOutput
}

// ListAccountsUseCase handles account listing logic.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{accountRepo: accountRepo}
}

// Execute lists all accounts in insertion order.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	output := &ListAccountsOutput{Accounts: make([]*AccountOutput, 0, len(accounts))}
	for _, acc := range accounts {
		output.Accounts = append(output.Accounts, newAccountOutput(acc))
	}

	return output, nil
}
