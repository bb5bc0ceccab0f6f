// Package dashboard contains the derived reporting use cases: summary
// metrics, chart series shaping and category breakdowns. Everything here is
// recomputed from the current collections on each call, never cached.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// Metric labels.
const (
	MetricNetWorth      = "Net Worth"
	MetricTotalIncome   = "Total Income"
	MetricTotalExpenses = "Total Expenses"
)

// Change figures are illustrative: no historical snapshots are retained, so
// there is no true period-over-period series to derive them from.
var (
	netWorthChange = decimal.NewFromFloat(2.4)
	incomeChange   = decimal.NewFromFloat(1.2)
	expensesChange = decimal.NewFromFloat(-5.2)
)

// GetMetricsOutput represents the ordered list of summary metrics.
type GetMetricsOutput struct {
	Metrics []*entity.Metric
}

// GetMetricsUseCase derives the summary metrics from the current accounts
// and transactions.
type GetMetricsUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetMetricsUseCase creates a new GetMetricsUseCase instance.
func NewGetMetricsUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *GetMetricsUseCase {
	return &GetMetricsUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes net worth, total income and total expenses. Net worth is
// the plain sum of account balances with no currency conversion.
func (uc *GetMetricsUseCase) Execute(ctx context.Context) (*GetMetricsOutput, error) {
	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	netWorth := decimal.Zero
	history := make([]decimal.Decimal, 0, len(accounts))
	for _, acc := range accounts {
		netWorth = netWorth.Add(acc.Balance)
		history = append(history, acc.Balance)
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, txn := range transactions {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			totalExpenses = totalExpenses.Add(txn.Amount.Abs())
		}
	}

	return &GetMetricsOutput{
		Metrics: []*entity.Metric{
			{
				Label:         MetricNetWorth,
				Value:         netWorth,
				ChangePercent: netWorthChange,
				Trend:         entity.TrendUp,
				History:       history,
			},
			{
				Label:         MetricTotalIncome,
				Value:         totalIncome,
				ChangePercent: incomeChange,
				Trend:         entity.TrendNeutral,
				History:       []decimal.Decimal{},
			},
			{
				Label:         MetricTotalExpenses,
				Value:         totalExpenses,
				ChangePercent: expensesChange,
				Trend:         entity.TrendDown,
				History:       []decimal.Decimal{},
			},
		},
	}, nil
}
