// Package dashboard contains the derived reporting use cases.
package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
	"github.com/ledgerly/backend/internal/infra/db"
	"github.com/ledgerly/backend/internal/integration/persistence"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newEmptyStore(t *testing.T, now time.Time) *persistence.Store {
	t.Helper()
	ctx := context.Background()
	kv := db.NewMemoryKVStore()
	for key, value := range map[string]string{
		persistence.KeyUser:         `{}`,
		persistence.KeyAccounts:     `[]`,
		persistence.KeyTransactions: `[]`,
		persistence.KeyBudgets:      `[]`,
		persistence.KeyGoals:        `[]`,
		persistence.KeyCategories:   `[]`,
	} {
		if err := kv.Save(ctx, key, []byte(value)); err != nil {
			t.Fatalf("failed to prepare storage: %v", err)
		}
	}
	store, err := persistence.NewStore(ctx, kv, fixedClock{now: now})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func createTxn(t *testing.T, store *persistence.Store, date time.Time, merchant, amount, category string, txnType entity.TransactionType) {
	t.Helper()
	repo := persistence.NewTransactionRepository(store)
	txn := entity.NewTransaction(date, merchant, decimal.RequireFromString(amount), "USD", category, "acc-1", txnType, false, "")
	if err := repo.Create(context.Background(), txn); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
}

func TestGetMetrics(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	store := newEmptyStore(t, now)
	accountRepo := persistence.NewAccountRepository(store)
	transactionRepo := persistence.NewTransactionRepository(store)

	for _, balance := range []string{"100.00", "-50.00"} {
		acc := entity.NewAccount("Account", entity.AccountTypeBank, decimal.RequireFromString(balance), "USD", "")
		if err := accountRepo.Create(context.Background(), acc); err != nil {
			t.Fatalf("failed to create account: %v", err)
		}
	}
	createTxn(t, store, now, "Tech Corp Salary", "200.00", "Income", entity.TransactionTypeIncome)
	createTxn(t, store, now, "Whole Foods Market", "30.00", "Food & Dining", entity.TransactionTypeExpense)
	createTxn(t, store, now, "Transfer to Savings", "-1000.00", "Transfer", entity.TransactionTypeTransfer)

	uc := NewGetMetricsUseCase(accountRepo, transactionRepo)
	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Metrics) != 3 {
		t.Fatalf("expected 3 metrics, got %d", len(output.Metrics))
	}

	netWorth := output.Metrics[0]
	if netWorth.Label != MetricNetWorth {
		t.Errorf("expected first metric %q, got %q", MetricNetWorth, netWorth.Label)
	}
	if !netWorth.Value.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("expected net worth 50.00, got %s", netWorth.Value)
	}
	if len(netWorth.History) != 2 {
		t.Fatalf("expected history with one entry per account, got %d", len(netWorth.History))
	}
	if !netWorth.History[0].Equal(decimal.RequireFromString("100.00")) || !netWorth.History[1].Equal(decimal.RequireFromString("-50.00")) {
		t.Errorf("expected history [100.00 -50.00], got %v", netWorth.History)
	}
	if !netWorth.ChangePercent.Equal(decimal.NewFromFloat(2.4)) {
		t.Errorf("expected change percent 2.4, got %s", netWorth.ChangePercent)
	}
	if netWorth.Trend != entity.TrendUp {
		t.Errorf("expected trend up, got %s", netWorth.Trend)
	}

	income := output.Metrics[1]
	if income.Label != MetricTotalIncome {
		t.Errorf("expected second metric %q, got %q", MetricTotalIncome, income.Label)
	}
	if !income.Value.Equal(decimal.RequireFromString("200.00")) {
		t.Errorf("expected total income 200.00, got %s", income.Value)
	}

	expenses := output.Metrics[2]
	if expenses.Label != MetricTotalExpenses {
		t.Errorf("expected third metric %q, got %q", MetricTotalExpenses, expenses.Label)
	}
	// Expenses are reported as a positive magnitude; transfers do not count.
	if !expenses.Value.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("expected total expenses 30.00, got %s", expenses.Value)
	}
}

func TestDailySeries(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	t.Run("buckets the last seven days oldest first", func(t *testing.T) {
		store := newEmptyStore(t, now)
		transactionRepo := persistence.NewTransactionRepository(store)
		uc := NewDailySeriesUseCase(transactionRepo, fixedClock{now: now})

		createTxn(t, store, now, "Tech Corp Salary", "100.00", "Income", entity.TransactionTypeIncome)
		createTxn(t, store, now, "Whole Foods Market", "40.00", "Food & Dining", entity.TransactionTypeExpense)
		createTxn(t, store, now.AddDate(0, 0, -3), "Shell Station", "10.00", "Transportation", entity.TransactionTypeExpense)
		// Transfers are excluded from the cash flow series.
		createTxn(t, store, now, "Transfer to Savings", "-1000.00", "Transfer", entity.TransactionTypeTransfer)
		// Outside the window.
		createTxn(t, store, now.AddDate(0, 0, -7), "Trader Joes", "64.20", "Food & Dining", entity.TransactionTypeExpense)

		output, err := uc.Execute(context.Background(), DailySeriesInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Points) != DefaultDailySeriesDays {
			t.Fatalf("expected %d points, got %d", DefaultDailySeriesDays, len(output.Points))
		}

		first := output.Points[0]
		if !first.Date.Equal(time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected oldest point on 2026-08-25, got %s", first.Date)
		}
		if !first.Income.IsZero() || !first.Expense.IsZero() {
			t.Errorf("expected empty oldest bucket, got income %s expense %s", first.Income, first.Expense)
		}

		threeDaysAgo := output.Points[3]
		if !threeDaysAgo.Expense.Equal(decimal.RequireFromString("10.00")) {
			t.Errorf("expected expense 10.00 three days ago, got %s", threeDaysAgo.Expense)
		}

		today := output.Points[len(output.Points)-1]
		if !today.Date.Equal(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected last point today, got %s", today.Date)
		}
		if !today.Income.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("expected income 100.00 today, got %s", today.Income)
		}
		if !today.Expense.Equal(decimal.RequireFromString("40.00")) {
			t.Errorf("expected expense 40.00 today, got %s", today.Expense)
		}
	})

	t.Run("classification follows the amount sign", func(t *testing.T) {
		store := newEmptyStore(t, now)
		transactionRepo := persistence.NewTransactionRepository(store)
		uc := NewDailySeriesUseCase(transactionRepo, fixedClock{now: now})

		// A transaction typed income but stored with a negative amount would
		// land in the expense bucket; only transfers keep arbitrary signs, so
		// exercise the sign rule through one.
		repo := persistence.NewTransactionRepository(store)
		txn := entity.NewTransaction(now, "Manual Adjustment", decimal.RequireFromString("-75.00"), "USD", "", "acc-1", entity.TransactionTypeExpense, false, "")
		if err := repo.Create(context.Background(), txn); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		output, err := uc.Execute(context.Background(), DailySeriesInput{Days: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Points) != 1 {
			t.Fatalf("expected 1 point, got %d", len(output.Points))
		}
		if !output.Points[0].Expense.Equal(decimal.RequireFromString("75.00")) {
			t.Errorf("expected expense 75.00, got %s", output.Points[0].Expense)
		}
	})

	t.Run("rejects a negative window", func(t *testing.T) {
		store := newEmptyStore(t, now)
		uc := NewDailySeriesUseCase(persistence.NewTransactionRepository(store), fixedClock{now: now})

		if _, err := uc.Execute(context.Background(), DailySeriesInput{Days: -3}); err == nil {
			t.Fatal("expected an error for a negative number of days")
		}
	})
}

func TestMonthlySeries(t *testing.T) {
	// Late in a 31-day month: naive month arithmetic would spill buckets here.
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	store := newEmptyStore(t, now)
	transactionRepo := persistence.NewTransactionRepository(store)
	uc := NewMonthlySeriesUseCase(transactionRepo, fixedClock{now: now})

	createTxn(t, store, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC), "Tech Corp Salary", "3200.00", "Income", entity.TransactionTypeIncome)
	createTxn(t, store, time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC), "Whole Foods Market", "142.80", "Food & Dining", entity.TransactionTypeExpense)
	// Oldest month inside the window.
	createTxn(t, store, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), "Target", "120.50", "Shopping", entity.TransactionTypeExpense)
	// Just outside the window.
	createTxn(t, store, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), "Target", "99.00", "Shopping", entity.TransactionTypeExpense)
	// Transfers are neither income nor expense in the monthly view.
	createTxn(t, store, time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC), "Transfer to Savings", "-1000.00", "Transfer", entity.TransactionTypeTransfer)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Points) != MonthlySeriesMonths {
		t.Fatalf("expected %d points, got %d", MonthlySeriesMonths, len(output.Points))
	}

	oldest := output.Points[0]
	if oldest.Year != 2026 || oldest.Month != time.March {
		t.Errorf("expected oldest bucket 2026-03, got %d-%02d", oldest.Year, oldest.Month)
	}
	if !oldest.Expense.Equal(decimal.RequireFromString("120.50")) {
		t.Errorf("expected expense 120.50 in March, got %s", oldest.Expense)
	}

	current := output.Points[len(output.Points)-1]
	if current.Year != 2026 || current.Month != time.August {
		t.Errorf("expected current bucket 2026-08, got %d-%02d", current.Year, current.Month)
	}
	if !current.Income.Equal(decimal.RequireFromString("3200.00")) {
		t.Errorf("expected income 3200.00 in August, got %s", current.Income)
	}
	if !current.Expense.Equal(decimal.RequireFromString("142.80")) {
		t.Errorf("expected expense 142.80 in August, got %s", current.Expense)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	store := newEmptyStore(t, now)
	transactionRepo := persistence.NewTransactionRepository(store)
	uc := NewCategoryBreakdownUseCase(transactionRepo)

	createTxn(t, store, now, "Whole Foods Market", "142.80", "Food & Dining", entity.TransactionTypeExpense)
	createTxn(t, store, now, "Trader Joes", "64.20", "Food & Dining", entity.TransactionTypeExpense)
	createTxn(t, store, now, "Amazon Marketplace", "89.99", "Shopping", entity.TransactionTypeExpense)
	createTxn(t, store, now, "Corner Store", "5.00", "", entity.TransactionTypeExpense)
	// Income and transfers never appear in the breakdown.
	createTxn(t, store, now, "Tech Corp Salary", "3200.00", "Income", entity.TransactionTypeIncome)
	createTxn(t, store, now, "Transfer to Savings", "-1000.00", "Transfer", entity.TransactionTypeTransfer)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Slices) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(output.Slices))
	}

	expected := []struct {
		name  string
		value string
	}{
		{"Food & Dining", "207.00"},
		{"Shopping", "89.99"},
		{entity.CategoryUncategorized, "5.00"},
	}
	for i, want := range expected {
		got := output.Slices[i]
		if got.Name != want.name {
			t.Errorf("slice %d: expected name %q, got %q", i, want.name, got.Name)
		}
		if !got.Value.Equal(decimal.RequireFromString(want.value)) {
			t.Errorf("slice %d: expected value %s, got %s", i, want.value, got.Value)
		}
	}
}
