package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// DefaultDailySeriesDays is the default window for the daily cash flow series.
const DefaultDailySeriesDays = 7

// DailyPoint is one day's bucket in the cash flow series.
type DailyPoint struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// DailySeriesInput represents the input for the daily series. Days defaults
// to DefaultDailySeriesDays when zero.
type DailySeriesInput struct {
	Days int
}

// DailySeriesOutput represents the daily series, oldest day first.
type DailySeriesOutput struct {
	Points []*DailyPoint
}

// DailySeriesUseCase buckets transactions into the last N calendar days.
// Classification is by amount sign, and transfers are excluded entirely.
type DailySeriesUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewDailySeriesUseCase creates a new DailySeriesUseCase instance.
func NewDailySeriesUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *DailySeriesUseCase {
	return &DailySeriesUseCase{transactionRepo: transactionRepo, clock: clock}
}

// Execute builds the series for the last N days including today.
func (uc *DailySeriesUseCase) Execute(ctx context.Context, input DailySeriesInput) (*DailySeriesOutput, error) {
	days := input.Days
	if days == 0 {
		days = DefaultDailySeriesDays
	}
	if days < 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"series window must be a positive number of days",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	today := entity.TruncateToDay(uc.clock.Now())
	output := &DailySeriesOutput{Points: make([]*DailyPoint, 0, days)}

	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		point := &DailyPoint{Date: day, Income: decimal.Zero, Expense: decimal.Zero}

		for _, txn := range transactions {
			if txn.Type == entity.TransactionTypeTransfer || !entity.SameDay(txn.Date, day) {
				continue
			}
			if txn.Amount.IsPositive() {
				point.Income = point.Income.Add(txn.Amount)
			} else if txn.Amount.IsNegative() {
				point.Expense = point.Expense.Add(txn.Amount.Abs())
			}
		}

		output.Points = append(output.Points, point)
	}

	return output, nil
}
