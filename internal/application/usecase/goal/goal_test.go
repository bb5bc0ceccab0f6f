// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
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

func newEmptyStore(t *testing.T) *persistence.Store {
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
	store, err := persistence.NewStore(ctx, kv, fixedClock{now: time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func createGoal(t *testing.T, repo adapter.GoalRepository, name, target string) *entity.Goal {
	t.Helper()
	g := entity.NewGoal(name, decimal.RequireFromString(target), nil, "#3FB77F")
	if err := repo.Create(context.Background(), g); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	return g
}

func TestCreateGoal(t *testing.T) {
	t.Run("starts at zero progress", func(t *testing.T) {
		store := newEmptyStore(t)
		uc := NewCreateGoalUseCase(persistence.NewGoalRepository(store), adapters.NewSlotNotifier())

		deadline := time.Date(2027, time.June, 30, 10, 30, 0, 0, time.UTC)
		output, err := uc.Execute(context.Background(), CreateGoalInput{
			Name:         "Emergency Fund",
			TargetAmount: decimal.NewFromInt(10000),
			Deadline:     &deadline,
			Color:        "#3FB77F",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Goal.CurrentAmount.IsZero() {
			t.Errorf("expected current amount 0, got %s", output.Goal.CurrentAmount)
		}
		if output.Goal.Deadline == nil {
			t.Fatal("expected deadline to be kept")
		}
		if !output.Goal.Deadline.Equal(time.Date(2027, time.June, 30, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected deadline truncated to the calendar day, got %s", output.Goal.Deadline)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		store := newEmptyStore(t)
		uc := NewCreateGoalUseCase(persistence.NewGoalRepository(store), adapters.NewSlotNotifier())

		tests := []struct {
			name         string
			input        CreateGoalInput
			expectedCode domainerror.GoalErrorCode
		}{
			{
				name:         "empty name",
				input:        CreateGoalInput{TargetAmount: decimal.NewFromInt(100)},
				expectedCode: domainerror.ErrCodeInvalidGoalName,
			},
			{
				name:         "zero target",
				input:        CreateGoalInput{Name: "New Laptop"},
				expectedCode: domainerror.ErrCodeInvalidTargetAmount,
			},
			{
				name:         "negative target",
				input:        CreateGoalInput{Name: "New Laptop", TargetAmount: decimal.NewFromInt(-100)},
				expectedCode: domainerror.ErrCodeInvalidTargetAmount,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tt.input)
				var goalErr *domainerror.GoalError
				if !errors.As(err, &goalErr) {
					t.Fatalf("expected a goal error, got %v", err)
				}
				if goalErr.Code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, goalErr.Code)
				}
			})
		}
	})
}

func TestAddMoney(t *testing.T) {
	t.Run("accumulates contributions", func(t *testing.T) {
		store := newEmptyStore(t)
		goalRepo := persistence.NewGoalRepository(store)
		uc := NewAddMoneyUseCase(goalRepo, adapters.NewSlotNotifier())
		g := createGoal(t, goalRepo, "Emergency Fund", "10000")

		for _, delta := range []string{"2500.00", "499.99"} {
			if _, err := uc.Execute(context.Background(), AddMoneyInput{ID: g.ID, Delta: decimal.RequireFromString(delta)}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		stored, err := goalRepo.FindByID(context.Background(), g.ID)
		if err != nil {
			t.Fatalf("failed to load goal: %v", err)
		}
		if !stored.CurrentAmount.Equal(decimal.RequireFromString("2999.99")) {
			t.Errorf("expected current amount 2999.99, got %s", stored.CurrentAmount)
		}
	})

	t.Run("goals can exceed their target", func(t *testing.T) {
		store := newEmptyStore(t)
		goalRepo := persistence.NewGoalRepository(store)
		uc := NewAddMoneyUseCase(goalRepo, adapters.NewSlotNotifier())
		g := createGoal(t, goalRepo, "New Laptop", "2000")

		output, err := uc.Execute(context.Background(), AddMoneyInput{ID: g.ID, Delta: decimal.RequireFromString("2500.00")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.CurrentAmount.Equal(decimal.RequireFromString("2500.00")) {
			t.Errorf("expected current amount 2500.00 with no clamp, got %s", output.Goal.CurrentAmount)
		}
	})

	t.Run("rejects non-positive contributions", func(t *testing.T) {
		store := newEmptyStore(t)
		goalRepo := persistence.NewGoalRepository(store)
		uc := NewAddMoneyUseCase(goalRepo, adapters.NewSlotNotifier())
		g := createGoal(t, goalRepo, "Emergency Fund", "10000")

		for _, delta := range []string{"0", "-50.00"} {
			_, err := uc.Execute(context.Background(), AddMoneyInput{ID: g.ID, Delta: decimal.RequireFromString(delta)})
			var goalErr *domainerror.GoalError
			if !errors.As(err, &goalErr) {
				t.Fatalf("expected a goal error for delta %s, got %v", delta, err)
			}
			if goalErr.Code != domainerror.ErrCodeInvalidGoalDelta {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidGoalDelta, goalErr.Code)
			}
		}
	})

	t.Run("unknown goal id fails", func(t *testing.T) {
		store := newEmptyStore(t)
		uc := NewAddMoneyUseCase(persistence.NewGoalRepository(store), adapters.NewSlotNotifier())

		_, err := uc.Execute(context.Background(), AddMoneyInput{ID: "goal-missing", Delta: decimal.NewFromInt(10)})
		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) {
			t.Fatalf("expected a goal error, got %v", err)
		}
		if goalErr.Code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, goalErr.Code)
		}
	})
}

func TestUpdateGoal(t *testing.T) {
	t.Run("clear deadline wins over a supplied deadline", func(t *testing.T) {
		store := newEmptyStore(t)
		goalRepo := persistence.NewGoalRepository(store)
		uc := NewUpdateGoalUseCase(goalRepo, adapters.NewSlotNotifier())

		deadline := time.Date(2027, time.June, 30, 0, 0, 0, 0, time.UTC)
		g := entity.NewGoal("Emergency Fund", decimal.NewFromInt(10000), &deadline, "#3FB77F")
		if err := goalRepo.Create(context.Background(), g); err != nil {
			t.Fatalf("failed to create goal: %v", err)
		}

		newDeadline := time.Date(2028, time.January, 1, 0, 0, 0, 0, time.UTC)
		output, err := uc.Execute(context.Background(), UpdateGoalInput{
			ID:            g.ID,
			Deadline:      &newDeadline,
			ClearDeadline: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Deadline != nil {
			t.Errorf("expected deadline cleared, got %s", output.Goal.Deadline)
		}
	})

	t.Run("current amount is not editable", func(t *testing.T) {
		store := newEmptyStore(t)
		goalRepo := persistence.NewGoalRepository(store)
		uc := NewUpdateGoalUseCase(goalRepo, adapters.NewSlotNotifier())
		g := createGoal(t, goalRepo, "Emergency Fund", "10000")

		newName := "Rainy Day Fund"
		output, err := uc.Execute(context.Background(), UpdateGoalInput{ID: g.ID, Name: &newName})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Name != newName {
			t.Errorf("expected name %q, got %q", newName, output.Goal.Name)
		}
		if !output.Goal.CurrentAmount.IsZero() {
			t.Errorf("expected current amount untouched at 0, got %s", output.Goal.CurrentAmount)
		}
	})
}
