package budget

import (
	"context"
	"fmt"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// ListBudgetsOutput represents the output of listing budgets with their
// resolved spend.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithSpend
}

// ListBudgetsUseCase lists budgets with spend resolved against the current
// period window at query time.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute lists all budgets, each paired with its spend for the current
// period window.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for spend resolution: %w", err)
	}

	now := uc.clock.Now()
	output := &ListBudgetsOutput{Budgets: make([]*entity.BudgetWithSpend, 0, len(budgets))}
	for _, b := range budgets {
		spent := resolveSpent(b, transactions, now)
		output.Budgets = append(output.Budgets, &entity.BudgetWithSpend{
			Budget:    b,
			Spent:     spent,
			Remaining: b.Limit.Sub(spent),
			IsOver:    spent.GreaterThan(b.Limit),
		})
	}

	return output, nil
}
