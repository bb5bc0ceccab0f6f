package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// MonthlySeriesMonths is the trailing window of the monthly series,
// including the current month.
const MonthlySeriesMonths = 6

// MonthlyPoint is one calendar month's bucket in the series.
type MonthlyPoint struct {
	Year    int
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlySeriesOutput represents the monthly series, oldest month first.
type MonthlySeriesOutput struct {
	Points []*MonthlyPoint
}

// MonthlySeriesUseCase buckets transactions by calendar month over the
// trailing six months. Unlike the daily series, classification follows the
// transaction type directly, not the amount sign.
type MonthlySeriesUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewMonthlySeriesUseCase creates a new MonthlySeriesUseCase instance.
func NewMonthlySeriesUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *MonthlySeriesUseCase {
	return &MonthlySeriesUseCase{transactionRepo: transactionRepo, clock: clock}
}

// Execute builds the trailing six month series including the current month.
func (uc *MonthlySeriesUseCase) Execute(ctx context.Context) (*MonthlySeriesOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	now := uc.clock.Now()
	// Anchor on the first of the month so AddDate month arithmetic never
	// spills into a neighboring month.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	output := &MonthlySeriesOutput{Points: make([]*MonthlyPoint, 0, MonthlySeriesMonths)}
	for i := MonthlySeriesMonths - 1; i >= 0; i-- {
		bucket := anchor.AddDate(0, -i, 0)
		point := &MonthlyPoint{
			Year:    bucket.Year(),
			Month:   bucket.Month(),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}

		for _, txn := range transactions {
			if txn.Date.Year() != bucket.Year() || txn.Date.Month() != bucket.Month() {
				continue
			}
			switch txn.Type {
			case entity.TransactionTypeIncome:
				point.Income = point.Income.Add(txn.Amount)
			case entity.TransactionTypeExpense:
				point.Expense = point.Expense.Add(txn.Amount.Abs())
			}
		}

		output.Points = append(output.Points, point)
	}

	return output, nil
}
