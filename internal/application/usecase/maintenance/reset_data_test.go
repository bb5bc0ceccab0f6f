// Package maintenance contains housekeeping use cases.
package maintenance

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

func newSeededStore(t *testing.T) *persistence.Store {
	t.Helper()
	store, err := persistence.NewStore(
		context.Background(),
		db.NewMemoryKVStore(),
		fixedClock{now: time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)},
	)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestResetData(t *testing.T) {
	t.Run("requires explicit confirmation", func(t *testing.T) {
		store := newSeededStore(t)
		accountRepo := persistence.NewAccountRepository(store)
		uc := NewResetDataUseCase(store, adapters.NewSlotNotifier())

		acc := entity.NewAccount("Keep Me", entity.AccountTypeBank, decimal.Zero, "USD", "")
		if err := accountRepo.Create(context.Background(), acc); err != nil {
			t.Fatalf("failed to create account: %v", err)
		}

		err := uc.Execute(context.Background(), ResetDataInput{})
		if !errors.Is(err, domainerror.ErrResetNotConfirmed) {
			t.Fatalf("expected confirmation error, got %v", err)
		}

		// Nothing was wiped.
		if _, err := accountRepo.FindByID(context.Background(), acc.ID); err != nil {
			t.Errorf("expected account to survive an unconfirmed reset: %v", err)
		}
	})

	t.Run("confirmed reset reseeds the demo dataset", func(t *testing.T) {
		store := newSeededStore(t)
		accountRepo := persistence.NewAccountRepository(store)
		transactionRepo := persistence.NewTransactionRepository(store)
		budgetRepo := persistence.NewBudgetRepository(store)
		goalRepo := persistence.NewGoalRepository(store)
		notifier := adapters.NewSlotNotifier()
		uc := NewResetDataUseCase(store, notifier)

		acc := entity.NewAccount("Wipe Me", entity.AccountTypeBank, decimal.Zero, "USD", "")
		if err := accountRepo.Create(context.Background(), acc); err != nil {
			t.Fatalf("failed to create account: %v", err)
		}

		if err := uc.Execute(context.Background(), ResetDataInput{Confirm: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		accounts, err := accountRepo.FindAll(context.Background())
		if err != nil {
			t.Fatalf("failed to list accounts: %v", err)
		}
		if len(accounts) != 4 {
			t.Errorf("expected the 4 seed accounts, got %d", len(accounts))
		}
		for _, a := range accounts {
			if a.ID == acc.ID {
				t.Error("expected the user-created account to be wiped")
			}
		}

		transactions, err := transactionRepo.FindAll(context.Background())
		if err != nil {
			t.Fatalf("failed to list transactions: %v", err)
		}
		if len(transactions) == 0 {
			t.Error("expected seeded transactions after reset")
		}
		// Seeded transactions reference the reseeded accounts, never the
		// wiped ones.
		seededIDs := make(map[string]bool, len(accounts))
		for _, a := range accounts {
			seededIDs[a.ID] = true
		}
		for _, txn := range transactions {
			if !seededIDs[txn.AccountID] {
				t.Errorf("transaction %s references unknown account %s", txn.ID, txn.AccountID)
			}
		}

		budgets, err := budgetRepo.FindAll(context.Background())
		if err != nil {
			t.Fatalf("failed to list budgets: %v", err)
		}
		if len(budgets) != 3 {
			t.Errorf("expected the 3 seed budgets, got %d", len(budgets))
		}

		goals, err := goalRepo.FindAll(context.Background())
		if err != nil {
			t.Fatalf("failed to list goals: %v", err)
		}
		if len(goals) != 2 {
			t.Errorf("expected the 2 seed goals, got %d", len(goals))
		}

		notification := notifier.Latest()
		if notification == nil || notification.Message != "All data has been reset" {
			t.Errorf("expected reset notification, got %+v", notification)
		}
	})
}
