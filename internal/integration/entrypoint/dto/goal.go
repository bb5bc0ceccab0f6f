// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation. Any
// supplied current amount is ignored: goals always start at zero.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required,min=1"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	Deadline     *string         `json:"deadline,omitempty"`
	Color        string          `json:"color,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name          *string          `json:"name,omitempty" binding:"omitempty,min=1"`
	TargetAmount  *decimal.Decimal `json:"targetAmount,omitempty"`
	Deadline      *string          `json:"deadline,omitempty"`
	ClearDeadline bool             `json:"clearDeadline,omitempty"`
	Color         *string          `json:"color,omitempty"`
}

// AddMoneyRequest represents the request body for adding money to a goal.
type AddMoneyRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *string         `json:"deadline,omitempty"`
	Color         string          `json:"color,omitempty"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a goal entity to a response DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Color:         g.Color,
	}
	if g.Deadline != nil {
		deadline := g.Deadline.Format(entity.DateLayout)
		response.Deadline = &deadline
	}
	return response
}

// ToGoalListResponse converts a list of goal entities to a list response.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: responses}
}
