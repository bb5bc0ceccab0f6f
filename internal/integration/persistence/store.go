// Package persistence implements the entity store and its repositories on
// top of a key-value persistence backend.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
	"github.com/ledgerly/backend/internal/integration/persistence/model"
)

// Storage keys, one per collection. Each key holds the JSON-serialized whole
// collection; every mutation rewrites the full value.
const (
	KeyUser         = "ledgerly_user"
	KeyAccounts     = "ledgerly_accounts"
	KeyTransactions = "ledgerly_transactions"
	KeyBudgets      = "ledgerly_budgets"
	KeyGoals        = "ledgerly_goals"
	KeyCategories   = "ledgerly_categories"
)

// Store is the single authoritative in-memory model of the ledger: the five
// collections plus the singleton user. All repositories operate through it,
// and every mutation persists the affected collection before returning.
//
// Execution is effectively single-writer; the mutex only guards against the
// HTTP server delivering two requests at once.
type Store struct {
	mu    sync.Mutex
	kv    adapter.KVStore
	clock adapter.Clock

	user         *entity.User
	accounts     []*entity.Account
	transactions []*entity.Transaction
	budgets      []*entity.Budget
	goals        []*entity.Goal
	categories   []string
}

// NewStore creates the store, loading every collection from the key-value
// backend. A key that is absent or holds a malformed value is replaced by the
// seed dataset and persisted immediately, so the store is never empty.
func NewStore(ctx context.Context, kv adapter.KVStore, clock adapter.Clock) (*Store, error) {
	s := &Store{
		kv:    kv,
		clock: clock,
	}

	if err := s.loadAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return s, nil
}

func (s *Store) loadAll(ctx context.Context) error {
	now := s.clock.Now()

	if err := loadCollection(ctx, s.kv, KeyUser, &s.user,
		func(r model.UserRecord) (*entity.User, error) { return r.ToEntity(), nil },
		func() *entity.User { return SeedUser() },
		func(u *entity.User) model.UserRecord { return model.UserFromEntity(u) },
	); err != nil {
		return err
	}

	if err := loadSlice(ctx, s.kv, KeyAccounts, &s.accounts,
		func(r model.AccountRecord) (*entity.Account, error) { return r.ToEntity(), nil },
		func() []*entity.Account { return SeedAccounts() },
		model.AccountFromEntity,
	); err != nil {
		return err
	}

	if err := loadSlice(ctx, s.kv, KeyTransactions, &s.transactions,
		model.TransactionRecord.ToEntity,
		func() []*entity.Transaction { return SeedTransactions(now, s.accounts) },
		model.TransactionFromEntity,
	); err != nil {
		return err
	}

	if err := loadSlice(ctx, s.kv, KeyBudgets, &s.budgets,
		func(r model.BudgetRecord) (*entity.Budget, error) { return r.ToEntity(), nil },
		func() []*entity.Budget { return SeedBudgets() },
		model.BudgetFromEntity,
	); err != nil {
		return err
	}

	if err := loadSlice(ctx, s.kv, KeyGoals, &s.goals,
		model.GoalRecord.ToEntity,
		func() []*entity.Goal { return SeedGoals() },
		model.GoalFromEntity,
	); err != nil {
		return err
	}

	return s.loadCategories(ctx)
}

// loadSlice loads one collection key, falling back to and persisting the seed
// when the key is absent or the stored value does not decode.
func loadSlice[R any, E any](
	ctx context.Context,
	kv adapter.KVStore,
	key string,
	dst *[]E,
	toEntity func(R) (E, error),
	seed func() []E,
	fromEntity func(E) R,
) error {
	raw, err := kv.Load(ctx, key)
	if err == nil {
		var records []R
		if jsonErr := json.Unmarshal(raw, &records); jsonErr == nil {
			entities := make([]E, 0, len(records))
			var decodeErr error
			for _, record := range records {
				e, convErr := toEntity(record)
				if convErr != nil {
					decodeErr = convErr
					break
				}
				entities = append(entities, e)
			}
			if decodeErr == nil {
				*dst = entities
				return nil
			}
			slog.Warn("Discarding malformed stored collection", "key", key, "error", decodeErr)
		} else {
			slog.Warn("Discarding malformed stored collection", "key", key, "error", jsonErr)
		}
	} else if !errors.Is(err, domainerror.ErrKeyNotFound) {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	*dst = seed()
	slog.Info("Seeded collection", "key", key, "count", len(*dst))
	return saveSlice(ctx, kv, key, *dst, fromEntity)
}

// loadCollection is the singleton-value counterpart of loadSlice.
func loadCollection[R any, E any](
	ctx context.Context,
	kv adapter.KVStore,
	key string,
	dst *E,
	toEntity func(R) (E, error),
	seed func() E,
	fromEntity func(E) R,
) error {
	raw, err := kv.Load(ctx, key)
	if err == nil {
		var record R
		if jsonErr := json.Unmarshal(raw, &record); jsonErr == nil {
			e, convErr := toEntity(record)
			if convErr == nil {
				*dst = e
				return nil
			}
			slog.Warn("Discarding malformed stored value", "key", key, "error", convErr)
		} else {
			slog.Warn("Discarding malformed stored value", "key", key, "error", jsonErr)
		}
	} else if !errors.Is(err, domainerror.ErrKeyNotFound) {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	*dst = seed()
	slog.Info("Seeded value", "key", key)
	return saveValue(ctx, kv, key, *dst, fromEntity)
}

func (s *Store) loadCategories(ctx context.Context) error {
	raw, err := s.kv.Load(ctx, KeyCategories)
	if err == nil {
		var categories []string
		if jsonErr := json.Unmarshal(raw, &categories); jsonErr == nil {
			s.categories = categories
			return nil
		} else {
			slog.Warn("Discarding malformed stored collection", "key", KeyCategories, "error", jsonErr)
		}
	} else if !errors.Is(err, domainerror.ErrKeyNotFound) {
		return fmt.Errorf("failed to load %s: %w", KeyCategories, err)
	}

	s.categories = SeedCategories()
	slog.Info("Seeded collection", "key", KeyCategories, "count", len(s.categories))
	return s.saveCategories(ctx)
}

func saveSlice[R any, E any](ctx context.Context, kv adapter.KVStore, key string, entities []E, fromEntity func(E) R) error {
	records := make([]R, len(entities))
	for i, e := range entities {
		records[i] = fromEntity(e)
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := kv.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

func saveValue[R any, E any](ctx context.Context, kv adapter.KVStore, key string, e E, fromEntity func(E) R) error {
	raw, err := json.Marshal(fromEntity(e))
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := kv.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// Collection persist helpers. Callers must hold s.mu.

func (s *Store) saveUser(ctx context.Context) error {
	return saveValue(ctx, s.kv, KeyUser, s.user, model.UserFromEntity)
}

func (s *Store) saveAccounts(ctx context.Context) error {
	return saveSlice(ctx, s.kv, KeyAccounts, s.accounts, model.AccountFromEntity)
}

func (s *Store) saveTransactions(ctx context.Context) error {
	return saveSlice(ctx, s.kv, KeyTransactions, s.transactions, model.TransactionFromEntity)
}

func (s *Store) saveBudgets(ctx context.Context) error {
	return saveSlice(ctx, s.kv, KeyBudgets, s.budgets, model.BudgetFromEntity)
}

func (s *Store) saveGoals(ctx context.Context) error {
	return saveSlice(ctx, s.kv, KeyGoals, s.goals, model.GoalFromEntity)
}

func (s *Store) saveCategories(ctx context.Context) error {
	raw, err := json.Marshal(s.categories)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", KeyCategories, err)
	}
	if err := s.kv.Save(ctx, KeyCategories, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", KeyCategories, err)
	}
	return nil
}

// Reset clears every persisted key and replaces all collections with a fresh
// seed dataset dated relative to the current clock.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{KeyUser, KeyAccounts, KeyTransactions, KeyBudgets, KeyGoals, KeyCategories} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}

	now := s.clock.Now()
	s.user = SeedUser()
	s.accounts = SeedAccounts()
	s.transactions = SeedTransactions(now, s.accounts)
	s.budgets = SeedBudgets()
	s.goals = SeedGoals()
	s.categories = SeedCategories()

	if err := s.saveUser(ctx); err != nil {
		return err
	}
	if err := s.saveAccounts(ctx); err != nil {
		return err
	}
	if err := s.saveTransactions(ctx); err != nil {
		return err
	}
	if err := s.saveBudgets(ctx); err != nil {
		return err
	}
	if err := s.saveGoals(ctx); err != nil {
		return err
	}
	if err := s.saveCategories(ctx); err != nil {
		return err
	}

	slog.Info("Store reset to seed dataset")
	return nil
}
