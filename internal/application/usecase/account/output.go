package account

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// AccountOutput represents an account in use case outputs.
type AccountOutput struct {
	ID          string
	Name        string
	Type        entity.AccountType
	Balance     decimal.Decimal
	Currency    string
	LastSynced  string
	Institution string
}

func newAccountOutput(acc *entity.Account) *AccountOutput {
	return &AccountOutput{
		ID:          acc.ID,
		Name:        acc.Name,
		Type:        acc.Type,
		Balance:     acc.Balance,
		Currency:    acc.Currency,
		LastSynced:  acc.LastSynced,
		Institution: acc.Institution,
	}
}
