package db

import (
	"context"
	"sync"

	"github.com/ledgerly/backend/internal/application/adapter"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// memoryKVStore implements adapter.KVStore in process memory. Nothing
// survives a restart; it exists for tests and for running without storage.
type memoryKVStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryKVStore creates an empty in-memory key-value store.
func NewMemoryKVStore() adapter.KVStore {
	return &memoryKVStore{entries: make(map[string][]byte)}
}

// Load retrieves the value stored under key.
func (s *memoryKVStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, domainerror.ErrKeyNotFound
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

// Save overwrites the value stored under key.
func (s *memoryKVStore) Save(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	s.entries[key] = copied
	return nil
}

// Delete removes the value stored under key.
func (s *memoryKVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}
