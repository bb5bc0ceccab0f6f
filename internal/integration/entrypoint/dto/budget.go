// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category string          `json:"category" binding:"required,min=1"`
	Limit    decimal.Decimal `json:"limit" binding:"required"`
	Period   string          `json:"period" binding:"required,oneof=monthly yearly"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category *string          `json:"category,omitempty" binding:"omitempty,min=1"`
	Limit    *decimal.Decimal `json:"limit,omitempty"`
	Period   *string          `json:"period,omitempty" binding:"omitempty,oneof=monthly yearly"`
}

// BudgetResponse represents a single budget in API responses. Spent,
// remaining and isOver are resolved at query time against the current
// period window.
type BudgetResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Limit     decimal.Decimal `json:"limit"`
	Period    string          `json:"period"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	IsOver    bool            `json:"isOver"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a budget entity to a response DTO with zero
// spend. Used after create/update mutations, where the caller has not asked
// for spend resolution.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID,
		Category:  b.Category,
		Limit:     b.Limit,
		Period:    string(b.Period),
		Spent:     decimal.Zero,
		Remaining: b.Limit,
		IsOver:    false,
	}
}

// ToBudgetWithSpendResponse converts a resolved budget to a response DTO.
func ToBudgetWithSpendResponse(b *entity.BudgetWithSpend) BudgetResponse {
	return BudgetResponse{
		ID:        b.Budget.ID,
		Category:  b.Budget.Category,
		Limit:     b.Budget.Limit,
		Period:    string(b.Budget.Period),
		Spent:     b.Spent,
		Remaining: b.Remaining,
		IsOver:    b.IsOver,
	}
}

// ToBudgetListResponse converts resolved budgets to a list response.
func ToBudgetListResponse(budgets []*entity.BudgetWithSpend) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetWithSpendResponse(b)
	}
	return BudgetListResponse{Budgets: responses}
}
