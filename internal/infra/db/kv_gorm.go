package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ledgerly/backend/internal/application/adapter"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// StorageEntryModel is the single-table schema backing the key-value store:
// one row per collection key, the whole serialized collection as the value.
type StorageEntryModel struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

// TableName overrides the GORM table name.
func (StorageEntryModel) TableName() string {
	return "storage_entries"
}

// gormKVStore implements adapter.KVStore on a GORM database.
type gormKVStore struct {
	db *gorm.DB
}

// NewGormKVStore creates a key-value store backed by the given database.
func NewGormKVStore(database *Database) adapter.KVStore {
	return &gormKVStore{db: database.DB()}
}

// Load retrieves the value stored under key.
func (s *gormKVStore) Load(ctx context.Context, key string) ([]byte, error) {
	var entry StorageEntryModel
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrKeyNotFound
		}
		return nil, result.Error
	}
	return entry.Value, nil
}

// Save upserts the value stored under key.
func (s *gormKVStore) Save(ctx context.Context, key string, value []byte) error {
	entry := StorageEntryModel{Key: key, Value: value}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry)
	return result.Error
}

// Delete removes the value stored under key. Absent keys are a no-op.
func (s *gormKVStore) Delete(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Delete(&StorageEntryModel{}, "key = ?", key)
	return result.Error
}
