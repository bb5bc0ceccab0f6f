package db

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/ledgerly/backend/config"
	"github.com/ledgerly/backend/internal/application/adapter"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// exerciseKVStore runs the shared contract every backend must satisfy.
func exerciseKVStore(t *testing.T, store adapter.KVStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("load of a missing key", func(t *testing.T) {
		if _, err := store.Load(ctx, "missing"); !errors.Is(err, domainerror.ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		want := []byte(`{"name":"Alex Sterling"}`)
		if err := store.Save(ctx, "profile", want); err != nil {
			t.Fatalf("failed to save: %v", err)
		}
		got, err := store.Load(ctx, "profile")
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("save overwrites an existing key", func(t *testing.T) {
		if err := store.Save(ctx, "counter", []byte("1")); err != nil {
			t.Fatalf("failed to save: %v", err)
		}
		if err := store.Save(ctx, "counter", []byte("2")); err != nil {
			t.Fatalf("failed to overwrite: %v", err)
		}
		got, err := store.Load(ctx, "counter")
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}
		if string(got) != "2" {
			t.Errorf("expected the overwritten value, got %s", got)
		}
	})

	t.Run("delete removes the key", func(t *testing.T) {
		if err := store.Save(ctx, "doomed", []byte("x")); err != nil {
			t.Fatalf("failed to save: %v", err)
		}
		if err := store.Delete(ctx, "doomed"); err != nil {
			t.Fatalf("failed to delete: %v", err)
		}
		if _, err := store.Load(ctx, "doomed"); !errors.Is(err, domainerror.ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
		}
	})

	t.Run("delete of a missing key is a no-op", func(t *testing.T) {
		if err := store.Delete(ctx, "never-there"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestMemoryKVStore(t *testing.T) {
	exerciseKVStore(t, NewMemoryKVStore())

	t.Run("stored bytes are isolated from the caller", func(t *testing.T) {
		store := NewMemoryKVStore()
		ctx := context.Background()

		value := []byte("original")
		if err := store.Save(ctx, "k", value); err != nil {
			t.Fatalf("failed to save: %v", err)
		}
		value[0] = 'X'

		got, err := store.Load(ctx, "k")
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}
		if string(got) != "original" {
			t.Errorf("expected stored value untouched, got %s", got)
		}
		got[0] = 'Y'

		again, err := store.Load(ctx, "k")
		if err != nil {
			t.Fatalf("failed to reload: %v", err)
		}
		if string(again) != "original" {
			t.Errorf("expected loaded copy isolated, got %s", again)
		}
	})
}

func TestGormKVStore(t *testing.T) {
	database, err := NewConnection(&config.StorageConfig{
		URL:             filepath.Join(t.TempDir(), "kv_test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := database.AutoMigrate(&StorageEntryModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if !database.HealthCheck() {
		t.Fatal("expected the database to report healthy")
	}

	exerciseKVStore(t, NewGormKVStore(database))
}

func TestRedisKVStore(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	exerciseKVStore(t, NewRedisKVStoreWithClient(client))
}
