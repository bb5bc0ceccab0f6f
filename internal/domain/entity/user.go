// Package entity defines the core business entities for the domain layer.
package entity

// User represents the single local user of the ledger. There is exactly one
// instance: it is mutated in place and never deleted.
type User struct {
	ID        string
	Name      string
	Email     string
	Currency  string // Base display currency
	AvatarURL string // Optional
}
