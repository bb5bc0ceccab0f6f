// Package subscription derives the recurring payment view from the
// transaction collection.
package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// SubscriptionOutput is one recurring payment, deduplicated by merchant and
// carrying the most recent charge.
type SubscriptionOutput struct {
	Merchant    string
	Category    string
	Amount      decimal.Decimal
	Currency    string
	LastCharged time.Time
	NextPayment time.Time
	Period      entity.RecurringPeriod
}

// ListSubscriptionsOutput represents the recurring payment view.
type ListSubscriptionsOutput struct {
	Subscriptions []*SubscriptionOutput
	MonthlyTotal  decimal.Decimal
}

// ListSubscriptionsUseCase lists recurring expense transactions grouped by
// merchant, keeping the latest charge per merchant.
type ListSubscriptionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListSubscriptionsUseCase creates a new ListSubscriptionsUseCase instance.
func NewListSubscriptionsUseCase(transactionRepo adapter.TransactionRepository) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{transactionRepo: transactionRepo}
}

// Execute builds the subscription view. The next payment date is projected
// one period after the latest charge.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context) (*ListSubscriptionsOutput, error) {
	recurring := true
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		Type:      entity.TransactionTypeExpense,
		Recurring: &recurring,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring transactions: %w", err)
	}

	byMerchant := make(map[string]*SubscriptionOutput)
	order := make([]string, 0)
	for _, txn := range transactions {
		existing, ok := byMerchant[txn.Merchant]
		if !ok {
			byMerchant[txn.Merchant] = newSubscriptionOutput(txn)
			order = append(order, txn.Merchant)
			continue
		}
		if txn.Date.After(existing.LastCharged) {
			byMerchant[txn.Merchant] = newSubscriptionOutput(txn)
		}
	}

	output := &ListSubscriptionsOutput{
		Subscriptions: make([]*SubscriptionOutput, 0, len(order)),
		MonthlyTotal:  decimal.Zero,
	}
	for _, merchant := range order {
		sub := byMerchant[merchant]
		output.Subscriptions = append(output.Subscriptions, sub)
		output.MonthlyTotal = output.MonthlyTotal.Add(sub.Amount.Abs())
	}

	return output, nil
}

func newSubscriptionOutput(txn *entity.Transaction) *SubscriptionOutput {
	period := txn.RecurringPeriod
	if period == "" {
		period = entity.RecurringPeriodMonthly
	}

	next := txn.Date.AddDate(0, 1, 0)
	if period == entity.RecurringPeriodYearly {
		next = txn.Date.AddDate(1, 0, 0)
	}

	return &SubscriptionOutput{
		Merchant:    txn.Merchant,
		Category:    txn.Category,
		Amount:      txn.Amount,
		Currency:    txn.Currency,
		LastCharged: txn.Date,
		NextPayment: next,
		Period:      period,
	}
}
