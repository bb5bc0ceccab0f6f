// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
	"github.com/ledgerly/backend/internal/infra/db"
	"github.com/ledgerly/backend/internal/integration/adapters"
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

func expenseOn(date time.Time, category, amount string) *entity.Transaction {
	return entity.NewTransaction(date, "Merchant", decimal.RequireFromString(amount), "USD", category, "acc-1", entity.TransactionTypeExpense, false, "")
}

func TestInPeriodWindow(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		period   entity.BudgetPeriod
		expected bool
	}{
		{
			name:     "same month counts for monthly",
			date:     time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
			period:   entity.BudgetPeriodMonthly,
			expected: true,
		},
		{
			name:     "previous month does not count for monthly",
			date:     time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC),
			period:   entity.BudgetPeriodMonthly,
			expected: false,
		},
		{
			name:     "same month last year does not count for monthly",
			date:     time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC),
			period:   entity.BudgetPeriodMonthly,
			expected: false,
		},
		{
			name:     "any month this year counts for yearly",
			date:     time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
			period:   entity.BudgetPeriodYearly,
			expected: true,
		},
		{
			name:     "last year does not count for yearly",
			date:     time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			period:   entity.BudgetPeriodYearly,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inPeriodWindow(tt.date, now, tt.period); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestResolveSpent(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	budget := entity.NewBudget("Food & Dining", decimal.NewFromInt(800), entity.BudgetPeriodMonthly)

	transactions := []*entity.Transaction{
		// Counted: current-month expenses in the budget's category.
		expenseOn(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), "Food & Dining", "142.80"),
		expenseOn(time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC), "Food & Dining", "64.20"),
		// Different category.
		expenseOn(time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC), "Shopping", "89.99"),
		// Same category, previous month.
		expenseOn(time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC), "Food & Dining", "120.50"),
		// Income in the same category is never counted.
		entity.NewTransaction(time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC), "Refund", decimal.RequireFromString("30.00"), "USD", "Food & Dining", "acc-1", entity.TransactionTypeIncome, false, ""),
	}

	spent := resolveSpent(budget, transactions, now)
	if !spent.Equal(decimal.RequireFromString("207.00")) {
		t.Errorf("expected spent 207.00, got %s", spent)
	}
}

func TestListBudgets(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	t.Run("resolves spend against the current period window", func(t *testing.T) {
		store := newEmptyStore(t, now)
		budgetRepo := persistence.NewBudgetRepository(store)
		transactionRepo := persistence.NewTransactionRepository(store)
		uc := NewListBudgetsUseCase(budgetRepo, transactionRepo, fixedClock{now: now})

		budget := entity.NewBudget("Food & Dining", decimal.NewFromInt(800), entity.BudgetPeriodMonthly)
		if err := budgetRepo.Create(context.Background(), budget); err != nil {
			t.Fatalf("failed to create budget: %v", err)
		}

		for _, txn := range []*entity.Transaction{
			expenseOn(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), "Food & Dining", "142.80"),
			expenseOn(time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC), "Food & Dining", "500.00"),
		} {
			if err := transactionRepo.Create(context.Background(), txn); err != nil {
				t.Fatalf("failed to create transaction: %v", err)
			}
		}

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Budgets) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(output.Budgets))
		}

		got := output.Budgets[0]
		if !got.Spent.Equal(decimal.RequireFromString("142.80")) {
			t.Errorf("expected spent 142.80, got %s", got.Spent)
		}
		if !got.Remaining.Equal(decimal.RequireFromString("657.20")) {
			t.Errorf("expected remaining 657.20, got %s", got.Remaining)
		}
		if got.IsOver {
			t.Error("expected budget not over its limit")
		}
	})

	t.Run("flags budgets over their limit", func(t *testing.T) {
		store := newEmptyStore(t, now)
		budgetRepo := persistence.NewBudgetRepository(store)
		transactionRepo := persistence.NewTransactionRepository(store)
		uc := NewListBudgetsUseCase(budgetRepo, transactionRepo, fixedClock{now: now})

		budget := entity.NewBudget("Entertainment", decimal.NewFromInt(200), entity.BudgetPeriodMonthly)
		if err := budgetRepo.Create(context.Background(), budget); err != nil {
			t.Fatalf("failed to create budget: %v", err)
		}
		if err := transactionRepo.Create(context.Background(), expenseOn(now, "Entertainment", "250.00")); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := output.Budgets[0]
		if !got.IsOver {
			t.Error("expected budget flagged over its limit")
		}
		if !got.Remaining.Equal(decimal.RequireFromString("-50.00")) {
			t.Errorf("expected remaining -50.00, got %s", got.Remaining)
		}
	})

	t.Run("spending exactly the limit is not over", func(t *testing.T) {
		store := newEmptyStore(t, now)
		budgetRepo := persistence.NewBudgetRepository(store)
		transactionRepo := persistence.NewTransactionRepository(store)
		uc := NewListBudgetsUseCase(budgetRepo, transactionRepo, fixedClock{now: now})

		budget := entity.NewBudget("Shopping", decimal.NewFromInt(300), entity.BudgetPeriodMonthly)
		if err := budgetRepo.Create(context.Background(), budget); err != nil {
			t.Fatalf("failed to create budget: %v", err)
		}
		if err := transactionRepo.Create(context.Background(), expenseOn(now, "Shopping", "300.00")); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Budgets[0].IsOver {
			t.Error("expected spend equal to the limit not to be flagged over")
		}
	})
}

func TestCreateBudget(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	store := newEmptyStore(t, now)
	uc := NewCreateBudgetUseCase(persistence.NewBudgetRepository(store), adapters.NewSlotNotifier())

	tests := []struct {
		name         string
		input        CreateBudgetInput
		expectedCode domainerror.BudgetErrorCode
	}{
		{
			name:         "empty category",
			input:        CreateBudgetInput{Limit: decimal.NewFromInt(100), Period: entity.BudgetPeriodMonthly},
			expectedCode: domainerror.ErrCodeInvalidBudgetCategory,
		},
		{
			name:         "zero limit",
			input:        CreateBudgetInput{Category: "Food & Dining", Period: entity.BudgetPeriodMonthly},
			expectedCode: domainerror.ErrCodeInvalidBudgetLimit,
		},
		{
			name:         "negative limit",
			input:        CreateBudgetInput{Category: "Food & Dining", Limit: decimal.NewFromInt(-5), Period: entity.BudgetPeriodMonthly},
			expectedCode: domainerror.ErrCodeInvalidBudgetLimit,
		},
		{
			name:         "unknown period",
			input:        CreateBudgetInput{Category: "Food & Dining", Limit: decimal.NewFromInt(100), Period: "weekly"},
			expectedCode: domainerror.ErrCodeInvalidBudgetPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			var budErr *domainerror.BudgetError
			if !errors.As(err, &budErr) {
				t.Fatalf("expected a budget error, got %v", err)
			}
			if budErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, budErr.Code)
			}
		})
	}

	t.Run("valid budget is created", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CreateBudgetInput{
			Category: "Food & Dining",
			Limit:    decimal.NewFromInt(800),
			Period:   entity.BudgetPeriodMonthly,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Budget.ID == "" {
			t.Error("expected a generated budget id")
		}
	})
}
