// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the recurring window a budget applies to.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a spending ceiling for a category over a recurring
// period. The amount spent against a budget is never stored: it is always
// recomputed from the transaction collection at query time.
type Budget struct {
	ID       string
	Category string
	Limit    decimal.Decimal // Positive
	Period   BudgetPeriod
}

// NewBudget creates a new Budget with a fresh id.
func NewBudget(category string, limit decimal.Decimal, period BudgetPeriod) *Budget {
	return &Budget{
		ID:       fmt.Sprintf("bud-%s", uuid.NewString()),
		Category: category,
		Limit:    limit,
		Period:   period,
	}
}

// BudgetWithSpend pairs a budget with its spend resolved against the current
// period window.
type BudgetWithSpend struct {
	Budget    *Budget
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	IsOver    bool
}

// IsValidBudgetPeriod reports whether the given period is supported.
func IsValidBudgetPeriod(period BudgetPeriod) bool {
	return period == BudgetPeriodMonthly || period == BudgetPeriodYearly
}
