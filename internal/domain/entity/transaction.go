// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for transaction dates. Transactions carry a
// calendar day only, never a time component.
const DateLayout = "2006-01-02"

// TransactionType classifies a transaction for filtering and reporting. It is
// informational: the sign of the amount is the source of truth for cash flow.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// TransactionStatus represents the settlement state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusPosted  TransactionStatus = "posted"
)

// RecurringPeriod represents how often a recurring transaction repeats.
type RecurringPeriod string

const (
	RecurringPeriodMonthly RecurringPeriod = "monthly"
	RecurringPeriodYearly  RecurringPeriod = "yearly"
)

// Transaction represents a single signed monetary event affecting exactly one
// account. Positive amounts are inflows, negative amounts outflows.
type Transaction struct {
	ID              string
	Date            time.Time // Calendar day, truncated to midnight UTC
	Merchant        string
	Amount          decimal.Decimal
	Currency        string
	Category        string
	AccountID       string
	Status          TransactionStatus
	Type            TransactionType
	IsRecurring     bool
	RecurringPeriod RecurringPeriod // Empty unless IsRecurring
}

// NewTransaction creates a new posted Transaction with a fresh id. The amount
// sign is normalized from the transaction type: expenses are stored
// non-positive, income non-negative.
func NewTransaction(
	date time.Time,
	merchant string,
	amount decimal.Decimal,
	currency string,
	category string,
	accountID string,
	transactionType TransactionType,
	isRecurring bool,
	recurringPeriod RecurringPeriod,
) *Transaction {
	return &Transaction{
		ID:              fmt.Sprintf("txn-%s", uuid.NewString()),
		Date:            TruncateToDay(date),
		Merchant:        merchant,
		Amount:          NormalizeAmount(amount, transactionType),
		Currency:        currency,
		Category:        category,
		AccountID:       accountID,
		Status:          TransactionStatusPosted,
		Type:            transactionType,
		IsRecurring:     isRecurring,
		RecurringPeriod: recurringPeriod,
	}
}

// NormalizeAmount forces the amount sign to agree with the transaction type:
// non-positive for expenses, non-negative for income. Transfers keep their
// sign untouched.
func NormalizeAmount(amount decimal.Decimal, transactionType TransactionType) decimal.Decimal {
	switch transactionType {
	case TransactionTypeExpense:
		return amount.Abs().Neg()
	case TransactionTypeIncome:
		return amount.Abs()
	default:
		return amount
	}
}

// TruncateToDay drops the time component of a date, pinning it to midnight UTC.
func TruncateToDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two dates fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsValidTransactionType reports whether the given type is supported.
func IsValidTransactionType(transactionType TransactionType) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// IsValidRecurringPeriod reports whether the given recurring period is supported.
func IsValidRecurringPeriod(period RecurringPeriod) bool {
	return period == RecurringPeriodMonthly || period == RecurringPeriodYearly
}
