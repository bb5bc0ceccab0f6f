// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/usecase/subscription"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// SubscriptionResponse represents one recurring payment in API responses.
type SubscriptionResponse struct {
	Merchant    string          `json:"merchant"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	LastCharged string          `json:"lastCharged"`
	NextPayment string          `json:"nextPayment"`
	Period      string          `json:"period"`
}

// SubscriptionListResponse represents the recurring payment view.
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	MonthlyTotal  decimal.Decimal        `json:"monthlyTotal"`
}

// ToSubscriptionListResponse converts subscription outputs to a list response.
func ToSubscriptionListResponse(output *subscription.ListSubscriptionsOutput) SubscriptionListResponse {
	subscriptions := make([]SubscriptionResponse, len(output.Subscriptions))
	for i, sub := range output.Subscriptions {
		subscriptions[i] = SubscriptionResponse{
			Merchant:    sub.Merchant,
			Category:    sub.Category,
			Amount:      sub.Amount,
			Currency:    sub.Currency,
			LastCharged: sub.LastCharged.Format(entity.DateLayout),
			NextPayment: sub.NextPayment.Format(entity.DateLayout),
			Period:      string(sub.Period),
		}
	}
	return SubscriptionListResponse{
		Subscriptions: subscriptions,
		MonthlyTotal:  output.MonthlyTotal,
	}
}
