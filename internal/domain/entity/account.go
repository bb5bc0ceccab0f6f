// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account a balance lives in.
type AccountType string

const (
	AccountTypeBank       AccountType = "bank"
	AccountTypeCash       AccountType = "cash"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
)

// Account represents a named store of money with a running balance.
// The balance is maintained incrementally by transaction mutations and must
// always equal the opening balance plus the sum of signed amounts of every
// transaction referencing this account.
type Account struct {
	ID          string
	Name        string
	Type        AccountType
	Balance     decimal.Decimal // Signed, in the account's own currency
	Currency    string
	LastSynced  string // Display-only label, e.g. "Just now"
	Institution string // Optional
}

// NewAccount creates a new Account with a fresh id and the given opening balance.
func NewAccount(name string, accountType AccountType, openingBalance decimal.Decimal, currency, institution string) *Account {
	return &Account{
		ID:          fmt.Sprintf("acc-%s", uuid.NewString()),
		Name:        name,
		Type:        accountType,
		Balance:     openingBalance,
		Currency:    currency,
		LastSynced:  "Just now",
		Institution: institution,
	}
}

// IsValidAccountType reports whether the given account type is one of the
// supported kinds.
func IsValidAccountType(accountType AccountType) bool {
	switch accountType {
	case AccountTypeBank, AccountTypeCash, AccountTypeCredit, AccountTypeInvestment:
		return true
	}
	return false
}
