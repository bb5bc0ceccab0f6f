// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/usecase/account"
)

// CreateAccountRequest represents the request body for linking an account.
type CreateAccountRequest struct {
	Name        string          `json:"name" binding:"required,min=1"`
	Type        string          `json:"type" binding:"required,oneof=bank cash credit investment"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency" binding:"required"`
	Institution string          `json:"institution,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name        *string          `json:"name,omitempty" binding:"omitempty,min=1"`
	Type        *string          `json:"type,omitempty" binding:"omitempty,oneof=bank cash credit investment"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
	Institution *string          `json:"institution,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	LastSynced  string          `json:"lastSynced"`
	Institution string          `json:"institution,omitempty"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// DeleteAccountResponse reports how many transactions were left pointing at
// the removed account.
type DeleteAccountResponse struct {
	OrphanedTransactions int `json:"orphanedTransactions"`
}

// ToAccountResponse converts an account use case output to a response DTO.
func ToAccountResponse(out *account.AccountOutput) AccountResponse {
	return AccountResponse{
		ID:          out.ID,
		Name:        out.Name,
		Type:        string(out.Type),
		Balance:     out.Balance,
		Currency:    out.Currency,
		LastSynced:  out.LastSynced,
		Institution: out.Institution,
	}
}

// ToAccountListResponse converts a list of account outputs to a list response.
func ToAccountListResponse(outputs []*account.AccountOutput) AccountListResponse {
	accounts := make([]AccountResponse, len(outputs))
	for i, out := range outputs {
		accounts[i] = ToAccountResponse(out)
	}
	return AccountListResponse{Accounts: accounts}
}
