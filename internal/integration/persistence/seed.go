package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// The seed dataset gives a brand-new store realistic demo data: one user,
// four accounts with distinct types, transactions spanning today back through
// last month, three budgets and two goals. Ids are generated fresh at seed
// time, so reseeding never collides with anything a user exported earlier.

// SeedUser returns the demo user.
func SeedUser() *entity.User {
	return &entity.User{
		ID:        fmt.Sprintf("user-%s", uuid.NewString()),
		Name:      "Alex Sterling",
		Email:     "alex@ledgerly.app",
		Currency:  "USD",
		AvatarURL: "https://picsum.photos/200",
	}
}

// SeedAccounts returns the four demo accounts.
func SeedAccounts() []*entity.Account {
	return []*entity.Account{
		{
			ID:          fmt.Sprintf("acc-%s", uuid.NewString()),
			Name:        "Chase Sapphire",
			Type:        entity.AccountTypeCredit,
			Balance:     decimal.RequireFromString("-1240.50"),
			Currency:    "USD",
			LastSynced:  "2h ago",
			Institution: "Chase",
		},
		{
			ID:          fmt.Sprintf("acc-%s", uuid.NewString()),
			Name:        "Checking Main",
			Type:        entity.AccountTypeBank,
			Balance:     decimal.RequireFromString("8450.25"),
			Currency:    "USD",
			LastSynced:  "1h ago",
			Institution: "Chase",
		},
		{
			ID:          fmt.Sprintf("acc-%s", uuid.NewString()),
			Name:        "High Yield Savings",
			Type:        entity.AccountTypeInvestment,
			Balance:     decimal.RequireFromString("42000.00"),
			Currency:    "USD",
			LastSynced:  "5h ago",
			Institution: "Ally",
		},
		{
			ID:         fmt.Sprintf("acc-%s", uuid.NewString()),
			Name:       "Wallet Cash",
			Type:       entity.AccountTypeCash,
			Balance:    decimal.RequireFromString("120.00"),
			Currency:   "USD",
			LastSynced: "1d ago",
		},
	}
}

// seedTxn is a compact description of one seeded transaction.
type seedTxn struct {
	date            time.Time
	merchant        string
	amount          string
	category        string
	account         int // Index into the seeded accounts
	status          entity.TransactionStatus
	txnType         entity.TransactionType
	recurringPeriod entity.RecurringPeriod
}

// SeedTransactions returns the demo transactions, dated relative to now so
// the dashboard always has data for the current period. AccountID values are
// resolved against the given accounts so the seeded ledger has no dangling
// references; when the slice is too short (partially wiped storage) the
// remaining transactions fall back to empty account ids, which the engine
// tolerates and flags.
func SeedTransactions(now time.Time, accounts []*entity.Account) []*entity.Transaction {
	day := func(offset int) time.Time {
		return entity.TruncateToDay(now.AddDate(0, 0, -offset))
	}
	monthAgo := func(months, dayOfMonth int) time.Time {
		d := now.AddDate(0, -months, 0)
		return time.Date(d.Year(), d.Month(), dayOfMonth, 0, 0, 0, 0, time.UTC)
	}

	seeds := []seedTxn{
		// Today
		{day(0), "Whole Foods Market", "-142.80", "Food & Dining", 0, entity.TransactionStatusPosted, entity.TransactionTypeExpense, ""},
		{day(0), "Uber Technologies", "-24.50", "Transportation", 0, entity.TransactionStatusPending, entity.TransactionTypeExpense, ""},
		// Yesterday
		{day(1), "Tech Corp Salary", "3200.00", "Income", 1, entity.TransactionStatusPosted, entity.TransactionTypeIncome, entity.RecurringPeriodMonthly},
		{day(1), "Netflix Subscription", "-15.99", "Entertainment", 0, entity.TransactionStatusPosted, entity.TransactionTypeExpense, entity.RecurringPeriodMonthly},
		// This week
		{day(2), "Shell Station", "-45.00", "Transportation", 0, entity.TransactionStatusPosted, entity.TransactionTypeExpense, ""},
		{day(3), "Transfer to Savings", "-1000.00", "Transfer", 1, entity.TransactionStatusPosted, entity.TransactionTypeTransfer, ""},
		{day(3), "Transfer from Checking", "1000.00", "Transfer", 2, entity.TransactionStatusPosted, entity.TransactionTypeTransfer, ""},
		{day(4), "Amazon Marketplace", "-89.99", "Shopping", 0, entity.TransactionStatusPosted, entity.TransactionTypeExpense, ""},
		{day(5), "Electric Utility", "-120.40", "Utilities", 1, entity.TransactionStatusPosted, entity.TransactionTypeExpense, entity.RecurringPeriodMonthly},
		{day(6), "Starbucks", "-6.50", "Food & Dining", 3, entity.TransactionStatusPosted, entity.TransactionTypeExpense, ""},
		{day(6), "Spotify", "-9.99", "Entertainment", 0, entity.TransactionStatusPosted, entity.TransactionTypeExpense, entity.RecurringPeriodMonthly},
		{day(7), "Trader Joes", "-64.20", "Food & Dining", 0, entity.TransactionStatusPosted, entity.TransactionTypeExpense, ""},
		// Last month, for the trend charts
		{monthAgo(1, 15), "Target", "-120.50", "Shopping", 0, entity.TransactionStatusPosted, entity.TransactionTypeExpense, ""},
		{monthAgo(1, 28), "Tech Corp Salary", "3200.00", "Income", 1, entity.TransactionStatusPosted, entity.TransactionTypeIncome, ""},
	}

	accountID := func(index int) string {
		if index < len(accounts) {
			return accounts[index].ID
		}
		return ""
	}

	transactions := make([]*entity.Transaction, len(seeds))
	for i, s := range seeds {
		transactions[i] = &entity.Transaction{
			ID:              fmt.Sprintf("txn-%s", uuid.NewString()),
			Date:            s.date,
			Merchant:        s.merchant,
			Amount:          decimal.RequireFromString(s.amount),
			Currency:        "USD",
			Category:        s.category,
			AccountID:       accountID(s.account),
			Status:          s.status,
			Type:            s.txnType,
			IsRecurring:     s.recurringPeriod != "",
			RecurringPeriod: s.recurringPeriod,
		}
	}
	return transactions
}

// SeedBudgets returns the three demo budgets.
func SeedBudgets() []*entity.Budget {
	return []*entity.Budget{
		{ID: fmt.Sprintf("bud-%s", uuid.NewString()), Category: "Food & Dining", Limit: decimal.NewFromInt(800), Period: entity.BudgetPeriodMonthly},
		{ID: fmt.Sprintf("bud-%s", uuid.NewString()), Category: "Entertainment", Limit: decimal.NewFromInt(200), Period: entity.BudgetPeriodMonthly},
		{ID: fmt.Sprintf("bud-%s", uuid.NewString()), Category: "Shopping", Limit: decimal.NewFromInt(300), Period: entity.BudgetPeriodMonthly},
	}
}

// SeedGoals returns the two demo goals. Unlike user-created goals these start
// with progress so the dashboard has something to show.
func SeedGoals() []*entity.Goal {
	emergencyDeadline := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	laptopDeadline := time.Date(2023, time.November, 30, 0, 0, 0, 0, time.UTC)
	return []*entity.Goal{
		{
			ID:            fmt.Sprintf("goal-%s", uuid.NewString()),
			Name:          "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(10000),
			CurrentAmount: decimal.NewFromInt(2500),
			Deadline:      &emergencyDeadline,
			Color:         "#3FB77F",
		},
		{
			ID:            fmt.Sprintf("goal-%s", uuid.NewString()),
			Name:          "New Laptop",
			TargetAmount:  decimal.NewFromInt(2000),
			CurrentAmount: decimal.NewFromInt(1200),
			Deadline:      &laptopDeadline,
			Color:         "#5B86E5",
		},
	}
}

// SeedCategories returns the default category vocabulary.
func SeedCategories() []string {
	return []string{
		"Food & Dining",
		"Transportation",
		"Housing",
		"Entertainment",
		"Shopping",
		"Utilities",
		"Income",
		"Transfer",
	}
}
