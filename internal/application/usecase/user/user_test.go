// Package user contains use cases for the singleton profile.
package user

import (
	"context"
	"testing"
	"time"

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

// newSeededStore loads a store from empty storage, which seeds the demo
// dataset including the singleton user.
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

func TestGetUser(t *testing.T) {
	store := newSeededStore(t)
	uc := NewGetUserUseCase(persistence.NewUserRepository(store))

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.User == nil {
		t.Fatal("expected the singleton user to exist")
	}
	if output.User.Name == "" || output.User.Email == "" {
		t.Errorf("expected seeded profile fields, got %+v", output.User)
	}
}

func TestUpdateUser(t *testing.T) {
	store := newSeededStore(t)
	userRepo := persistence.NewUserRepository(store)
	notifier := adapters.NewSlotNotifier()
	getUC := NewGetUserUseCase(userRepo)
	updateUC := NewUpdateUserUseCase(userRepo, notifier)

	before, err := getUC.Execute(context.Background())
	if err != nil {
		t.Fatalf("failed to load user: %v", err)
	}

	newName := "Jordan Blake"
	output, err := updateUC.Execute(context.Background(), UpdateUserInput{Name: &newName})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.User.Name != newName {
		t.Errorf("expected name %q, got %q", newName, output.User.Name)
	}
	if output.User.Email != before.User.Email {
		t.Errorf("expected email untouched, got %q", output.User.Email)
	}
	if output.User.ID != before.User.ID {
		t.Errorf("expected the user id to be stable, got %q", output.User.ID)
	}

	notification := notifier.Latest()
	if notification == nil || notification.Message != "Profile updated" {
		t.Errorf("expected profile notification, got %+v", notification)
	}
}
