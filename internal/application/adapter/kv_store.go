// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// KVStore is the persistence contract for the entity store. Each collection
// is serialized as a whole and written under its own key; there is no partial
// or delta persistence. Load returns domainerror.ErrKeyNotFound when nothing
// has been persisted under the key.
type KVStore interface {
	// Load retrieves the raw serialized value stored under key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the value stored under key.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
