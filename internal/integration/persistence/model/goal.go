// Package model defines the serialized records persisted by the key-value store.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// GoalRecord is the wire representation of a savings goal.
type GoalRecord struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      string          `json:"deadline,omitempty"`
	Color         string          `json:"color"`
}

// GoalFromEntity converts a domain Goal to its wire record.
func GoalFromEntity(goal *entity.Goal) GoalRecord {
	record := GoalRecord{
		ID:            goal.ID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Color:         goal.Color,
	}
	if goal.Deadline != nil {
		record.Deadline = goal.Deadline.Format(entity.DateLayout)
	}
	return record
}

// ToEntity converts the wire record back to a domain Goal.
func (r GoalRecord) ToEntity() (*entity.Goal, error) {
	goal := &entity.Goal{
		ID:            r.ID,
		Name:          r.Name,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Color:         r.Color,
	}
	if r.Deadline != "" {
		deadline, err := time.ParseInLocation(entity.DateLayout, r.Deadline, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("goal %s: invalid deadline %q: %w", r.ID, r.Deadline, err)
		}
		goal.Deadline = &deadline
	}
	return goal, nil
}
