// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name            string
		amount          string
		transactionType TransactionType
		expected        string
	}{
		{
			name:            "positive expense is flipped negative",
			amount:          "25.00",
			transactionType: TransactionTypeExpense,
			expected:        "-25.00",
		},
		{
			name:            "negative expense stays negative",
			amount:          "-25.00",
			transactionType: TransactionTypeExpense,
			expected:        "-25.00",
		},
		{
			name:            "negative income is flipped positive",
			amount:          "-3200.00",
			transactionType: TransactionTypeIncome,
			expected:        "3200.00",
		},
		{
			name:            "positive income stays positive",
			amount:          "3200.00",
			transactionType: TransactionTypeIncome,
			expected:        "3200.00",
		},
		{
			name:            "negative transfer keeps its sign",
			amount:          "-1000.00",
			transactionType: TransactionTypeTransfer,
			expected:        "-1000.00",
		},
		{
			name:            "positive transfer keeps its sign",
			amount:          "1000.00",
			transactionType: TransactionTypeTransfer,
			expected:        "1000.00",
		},
		{
			name:            "zero expense stays zero",
			amount:          "0",
			transactionType: TransactionTypeExpense,
			expected:        "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAmount(decimal.RequireFromString(tt.amount), tt.transactionType)
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestNewTransaction(t *testing.T) {
	date := time.Date(2026, time.August, 31, 14, 30, 12, 0, time.UTC)

	txn := NewTransaction(
		date,
		"Whole Foods Market",
		decimal.RequireFromString("142.80"),
		"USD",
		"Food & Dining",
		"acc-1",
		TransactionTypeExpense,
		false,
		"",
	)

	if !strings.HasPrefix(txn.ID, "txn-") {
		t.Errorf("expected id with txn- prefix, got %s", txn.ID)
	}

	if !txn.Date.Equal(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected date truncated to midnight UTC, got %s", txn.Date)
	}

	if !txn.Amount.Equal(decimal.RequireFromString("-142.80")) {
		t.Errorf("expected expense amount normalized to -142.80, got %s", txn.Amount)
	}

	if txn.Status != TransactionStatusPosted {
		t.Errorf("expected status posted, got %s", txn.Status)
	}
}

func TestTruncateToDay(t *testing.T) {
	date := time.Date(2026, time.February, 28, 23, 59, 59, 999, time.UTC)
	got := TruncateToDay(date)

	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("expected midnight, got %s", got)
	}
	if got.Year() != 2026 || got.Month() != time.February || got.Day() != 28 {
		t.Errorf("expected same calendar day, got %s", got)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, time.August, 31, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.August, 31, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, evening) {
		t.Error("expected same calendar day to match regardless of time")
	}
	if SameDay(evening, nextDay) {
		t.Error("expected different calendar days not to match")
	}
}

func TestIsValidTransactionType(t *testing.T) {
	for _, valid := range []TransactionType{TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer} {
		if !IsValidTransactionType(valid) {
			t.Errorf("expected %s to be valid", valid)
		}
	}
	if IsValidTransactionType("refund") {
		t.Error("expected unknown type to be invalid")
	}
	if IsValidTransactionType("") {
		t.Error("expected empty type to be invalid")
	}
}
