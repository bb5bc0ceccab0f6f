// Package model defines the serialized records persisted by the key-value store.
package model

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// AccountRecord is the wire representation of an account.
type AccountRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	LastSynced  string          `json:"lastSynced"`
	Institution string          `json:"institution,omitempty"`
}

// AccountFromEntity converts a domain Account to its wire record.
func AccountFromEntity(account *entity.Account) AccountRecord {
	return AccountRecord{
		ID:          account.ID,
		Name:        account.Name,
		Type:        string(account.Type),
		Balance:     account.Balance,
		Currency:    account.Currency,
		LastSynced:  account.LastSynced,
		Institution: account.Institution,
	}
}

// ToEntity converts the wire record back to a domain Account.
func (r AccountRecord) ToEntity() *entity.Account {
	return &entity.Account{
		ID:          r.ID,
		Name:        r.Name,
		Type:        entity.AccountType(r.Type),
		Balance:     r.Balance,
		Currency:    r.Currency,
		LastSynced:  r.LastSynced,
		Institution: r.Institution,
	}
}
