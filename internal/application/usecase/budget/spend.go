package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// inPeriodWindow reports whether a transaction date falls inside the budget's
// current period window relative to now: same calendar month and year for
// monthly budgets, same calendar year for yearly ones.
func inPeriodWindow(date, now time.Time, period entity.BudgetPeriod) bool {
	if date.Year() != now.Year() {
		return false
	}
	if period == entity.BudgetPeriodMonthly {
		return date.Month() == now.Month()
	}
	return true
}

// resolveSpent sums the absolute amounts of expense transactions matching
// the budget's category inside its current period window. The result is
// never read from storage; it is recomputed on every query.
func resolveSpent(budget *entity.Budget, transactions []*entity.Transaction, now time.Time) decimal.Decimal {
	spent := decimal.Zero
	for _, txn := range transactions {
		if txn.Category != budget.Category || txn.Type != entity.TransactionTypeExpense {
			continue
		}
		if !inPeriodWindow(txn.Date, now, budget.Period) {
			continue
		}
		spent = spent.Add(txn.Amount.Abs())
	}
	return spent
}
