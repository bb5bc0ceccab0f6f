// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/usecase/transaction"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date            string          `json:"date" binding:"required"`
	Merchant        string          `json:"merchant" binding:"required,min=1"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Currency        string          `json:"currency" binding:"required"`
	Category        string          `json:"category,omitempty"`
	AccountID       string          `json:"accountId" binding:"required"`
	Type            string          `json:"type" binding:"required,oneof=income expense transfer"`
	IsRecurring     bool            `json:"isRecurring,omitempty"`
	RecurringPeriod string          `json:"recurringPeriod,omitempty" binding:"omitempty,oneof=monthly yearly"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date            *string          `json:"date,omitempty"`
	Merchant        *string          `json:"merchant,omitempty" binding:"omitempty,min=1"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Currency        *string          `json:"currency,omitempty"`
	Category        *string          `json:"category,omitempty"`
	AccountID       *string          `json:"accountId,omitempty"`
	Status          *string          `json:"status,omitempty" binding:"omitempty,oneof=pending posted"`
	Type            *string          `json:"type,omitempty" binding:"omitempty,oneof=income expense transfer"`
	IsRecurring     *bool            `json:"isRecurring,omitempty"`
	RecurringPeriod *string          `json:"recurringPeriod,omitempty" binding:"omitempty,oneof=monthly yearly"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Merchant        string          `json:"merchant"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Category        string          `json:"category"`
	AccountID       string          `json:"accountId"`
	Status          string          `json:"status"`
	Type            string          `json:"type"`
	IsRecurring     bool            `json:"isRecurring"`
	RecurringPeriod string          `json:"recurringPeriod,omitempty"`
}

// TransactionMutationResponse wraps a transaction mutation result together
// with an optional consistency warning.
type TransactionMutationResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Warning     *ErrorResponse      `json:"warning,omitempty"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a transaction use case output to a response DTO.
func ToTransactionResponse(out *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:              out.ID,
		Date:            out.Date.Format(entity.DateLayout),
		Merchant:        out.Merchant,
		Amount:          out.Amount,
		Currency:        out.Currency,
		Category:        out.Category,
		AccountID:       out.AccountID,
		Status:          string(out.Status),
		Type:            string(out.Type),
		IsRecurring:     out.IsRecurring,
		RecurringPeriod: string(out.RecurringPeriod),
	}
}

// ToTransactionListResponse converts a list of transaction outputs to a list response.
func ToTransactionListResponse(outputs []*transaction.TransactionOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, out := range outputs {
		transactions[i] = ToTransactionResponse(out)
	}
	return TransactionListResponse{Transactions: transactions}
}

// ToWarningResponse converts a consistency warning to an embedded error DTO.
func ToWarningResponse(warning *domainerror.TransactionError) *ErrorResponse {
	if warning == nil {
		return nil
	}
	return &ErrorResponse{
		Error: warning.Message,
		Code:  string(warning.Code),
	}
}
