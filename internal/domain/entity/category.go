// Package entity defines the core business entities for the domain layer.
package entity

// Categories form the controlled vocabulary for Transaction.Category and
// Budget.Category. They are plain strings kept in insertion order; matching
// is case-sensitive and exact.

// CategoryUncategorized is the reporting bucket for transactions whose
// category is empty or no longer tracked.
const CategoryUncategorized = "Uncategorized"
