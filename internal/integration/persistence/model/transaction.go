// Package model defines the serialized records persisted by the key-value store.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// TransactionRecord is the wire representation of a transaction. Dates travel
// as "YYYY-MM-DD" strings: a transaction carries a calendar day, no time.
type TransactionRecord struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Merchant        string          `json:"merchant"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Category        string          `json:"category"`
	AccountID       string          `json:"accountId"`
	Status          string          `json:"status"`
	Type            string          `json:"type"`
	IsRecurring     bool            `json:"isRecurring,omitempty"`
	RecurringPeriod string          `json:"recurringPeriod,omitempty"`
}

// TransactionFromEntity converts a domain Transaction to its wire record.
func TransactionFromEntity(transaction *entity.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:              transaction.ID,
		Date:            transaction.Date.Format(entity.DateLayout),
		Merchant:        transaction.Merchant,
		Amount:          transaction.Amount,
		Currency:        transaction.Currency,
		Category:        transaction.Category,
		AccountID:       transaction.AccountID,
		Status:          string(transaction.Status),
		Type:            string(transaction.Type),
		IsRecurring:     transaction.IsRecurring,
		RecurringPeriod: string(transaction.RecurringPeriod),
	}
}

// ToEntity converts the wire record back to a domain Transaction.
func (r TransactionRecord) ToEntity() (*entity.Transaction, error) {
	date, err := time.ParseInLocation(entity.DateLayout, r.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: invalid date %q: %w", r.ID, r.Date, err)
	}

	return &entity.Transaction{
		ID:              r.ID,
		Date:            date,
		Merchant:        r.Merchant,
		Amount:          r.Amount,
		Currency:        r.Currency,
		Category:        r.Category,
		AccountID:       r.AccountID,
		Status:          entity.TransactionStatus(r.Status),
		Type:            entity.TransactionType(r.Type),
		IsRecurring:     r.IsRecurring,
		RecurringPeriod: entity.RecurringPeriod(r.RecurringPeriod),
	}, nil
}
