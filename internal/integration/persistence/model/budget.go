// Package model defines the serialized records persisted by the key-value store.
package model

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// BudgetRecord is the wire representation of a budget. The spent field is
// written as zero and ignored on load: spend is always recomputed from the
// transaction collection, never trusted from storage.
type BudgetRecord struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
	Limit    decimal.Decimal `json:"limit"`
	Period   string          `json:"period"`
}

// BudgetFromEntity converts a domain Budget to its wire record.
func BudgetFromEntity(budget *entity.Budget) BudgetRecord {
	return BudgetRecord{
		ID:       budget.ID,
		Category: budget.Category,
		Spent:    decimal.Zero,
		Limit:    budget.Limit,
		Period:   string(budget.Period),
	}
}

// ToEntity converts the wire record back to a domain Budget, discarding the
// stored spent placeholder.
func (r BudgetRecord) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:       r.ID,
		Category: r.Category,
		Limit:    r.Limit,
		Period:   entity.BudgetPeriod(r.Period),
	}
}
