// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// CategoryRepository defines persistence operations for the category
// vocabulary: a list of unique strings in insertion order.
type CategoryRepository interface {
	// FindAll retrieves all categories in insertion order.
	FindAll(ctx context.Context) ([]string, error)

	// Exists reports whether the exact name is present (case-sensitive).
	Exists(ctx context.Context, name string) (bool, error)

	// Add appends a category. The caller is responsible for the idempotency
	// check; adding a duplicate is not guarded here.
	Add(ctx context.Context, name string) error

	// Remove deletes a category unconditionally. Transactions and budgets
	// referencing it keep the now-untracked string.
	Remove(ctx context.Context, name string) error
}
