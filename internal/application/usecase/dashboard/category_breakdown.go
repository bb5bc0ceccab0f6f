package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// CategorySlice is one category's share of total expense spending.
type CategorySlice struct {
	Name  string
	Value decimal.Decimal
}

// CategoryBreakdownOutput represents expense totals grouped by category,
// largest first.
type CategoryBreakdownOutput struct {
	Slices []*CategorySlice
}

// CategoryBreakdownUseCase groups expense transactions by category.
// Transactions without a category land in the "Uncategorized" bucket.
type CategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCategoryBreakdownUseCase creates a new CategoryBreakdownUseCase instance.
func NewCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository) *CategoryBreakdownUseCase {
	return &CategoryBreakdownUseCase{transactionRepo: transactionRepo}
}

// Execute sums absolute expense amounts per category across all transactions.
func (uc *CategoryBreakdownUseCase) Execute(ctx context.Context) (*CategoryBreakdownOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	grouped := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if txn.Type != entity.TransactionTypeExpense {
			continue
		}
		name := txn.Category
		if name == "" {
			name = entity.CategoryUncategorized
		}
		grouped[name] = grouped[name].Add(txn.Amount.Abs())
	}

	output := &CategoryBreakdownOutput{Slices: make([]*CategorySlice, 0, len(grouped))}
	for name, value := range grouped {
		output.Slices = append(output.Slices, &CategorySlice{Name: name, Value: value})
	}
	sort.Slice(output.Slices, func(i, j int) bool {
		if output.Slices[i].Value.Equal(output.Slices[j].Value) {
			return output.Slices[i].Name < output.Slices[j].Name
		}
		return output.Slices[i].Value.GreaterThan(output.Slices[j].Value)
	})

	return output, nil
}
