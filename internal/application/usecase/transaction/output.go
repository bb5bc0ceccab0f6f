package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// TransactionOutput represents a transaction in use case outputs.
type TransactionOutput struct {
	ID              string
	Date            time.Time
	Merchant        string
	Amount          decimal.Decimal
	Currency        string
	Category        string
	AccountID       string
	Status          entity.TransactionStatus
	Type            entity.TransactionType
	IsRecurring     bool
	RecurringPeriod entity.RecurringPeriod
}

func newTransactionOutput(txn *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:              txn.ID,
		Date:            txn.Date,
		Merchant:        txn.Merchant,
		Amount:          txn.Amount,
		Currency:        txn.Currency,
		Category:        txn.Category,
		AccountID:       txn.AccountID,
		Status:          txn.Status,
		Type:            txn.Type,
		IsRecurring:     txn.IsRecurring,
		RecurringPeriod: txn.RecurringPeriod,
	}
}
