package persistence

import (
	"context"

	"github.com/ledgerly/backend/internal/application/adapter"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	store *Store
}

// NewCategoryRepository creates a new category repository over the store.
func NewCategoryRepository(store *Store) adapter.CategoryRepository {
	return &categoryRepository{store: store}
}

// FindAll retrieves all categories in insertion order.
func (r *categoryRepository) FindAll(ctx context.Context) ([]string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]string, len(s.categories))
	copy(categories, s.categories)
	return categories, nil
}

// Exists reports whether the exact name is present.
func (r *categoryRepository) Exists(ctx context.Context, name string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, category := range s.categories {
		if category == name {
			return true, nil
		}
	}
	return false, nil
}

// Add appends a category and persists the collection.
func (r *categoryRepository) Add(ctx context.Context, name string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = append(s.categories, name)
	return s.saveCategories(ctx)
}

// Remove deletes a category unconditionally and persists the collection.
func (r *categoryRepository) Remove(ctx context.Context, name string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, category := range s.categories {
		if category == name {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return s.saveCategories(ctx)
		}
	}
	return domainerror.ErrCategoryNotFound
}
