// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings target tracked independently of accounts and
// transactions. Funding is manual: money is added through an explicit
// operation, never derived from the ledger.
type Goal struct {
	ID            string
	Name          string
	TargetAmount  decimal.Decimal // Positive
	CurrentAmount decimal.Decimal // Non-negative, starts at zero
	Deadline      *time.Time      // Optional calendar date
	Color         string          // Presentation tag, no computational meaning
}

// NewGoal creates a new Goal with a fresh id. The current amount always
// starts at zero regardless of input.
func NewGoal(name string, targetAmount decimal.Decimal, deadline *time.Time, color string) *Goal {
	g := &Goal{
		ID:            fmt.Sprintf("goal-%s", uuid.NewString()),
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Color:         color,
	}
	if deadline != nil {
		d := TruncateToDay(*deadline)
		g.Deadline = &d
	}
	return g
}
