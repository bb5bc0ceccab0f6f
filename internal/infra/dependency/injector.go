// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/ledgerly/backend/config"
	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/application/usecase/account"
	"github.com/ledgerly/backend/internal/application/usecase/budget"
	"github.com/ledgerly/backend/internal/application/usecase/category"
	"github.com/ledgerly/backend/internal/application/usecase/dashboard"
	"github.com/ledgerly/backend/internal/application/usecase/goal"
	"github.com/ledgerly/backend/internal/application/usecase/maintenance"
	"github.com/ledgerly/backend/internal/application/usecase/subscription"
	"github.com/ledgerly/backend/internal/application/usecase/transaction"
	"github.com/ledgerly/backend/internal/application/usecase/user"
	"github.com/ledgerly/backend/internal/infra/server/router"
	"github.com/ledgerly/backend/internal/integration/adapters"
	"github.com/ledgerly/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerly/backend/internal/integration/entrypoint/middleware"
	"github.com/ledgerly/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	Store    *persistence.Store
	Notifier adapter.Notifier
	Router   *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The store is loaded (and seeded on first run) before any use case sees it.
func NewInjector(ctx context.Context, cfg *config.Config, kv adapter.KVStore, storageHealthChecker func() bool) (*Injector, error) {
	clock := adapters.NewSystemClock()
	notifier := adapters.NewSlotNotifier()

	store, err := persistence.NewStore(ctx, kv, clock)
	if err != nil {
		return nil, err
	}

	// Create repositories
	accountRepo := persistence.NewAccountRepository(store)
	transactionRepo := persistence.NewTransactionRepository(store)
	budgetRepo := persistence.NewBudgetRepository(store)
	goalRepo := persistence.NewGoalRepository(store)
	categoryRepo := persistence.NewCategoryRepository(store)
	userRepo := persistence.NewUserRepository(store)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo, notifier)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo, notifier)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo, transactionRepo, notifier)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, notifier)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, accountRepo, notifier)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, accountRepo, notifier)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo, clock)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, notifier)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, notifier)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, notifier)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, notifier)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, notifier)
	addMoneyUseCase := goal.NewAddMoneyUseCase(goalRepo, notifier)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, notifier)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	addCategoryUseCase := category.NewAddCategoryUseCase(categoryRepo, notifier)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, notifier)

	// Create user use cases
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo, notifier)

	// Create dashboard use cases
	metricsUseCase := dashboard.NewGetMetricsUseCase(accountRepo, transactionRepo)
	dailySeriesUseCase := dashboard.NewDailySeriesUseCase(transactionRepo, clock)
	monthlySeriesUseCase := dashboard.NewMonthlySeriesUseCase(transactionRepo, clock)
	categoryBreakdownUseCase := dashboard.NewCategoryBreakdownUseCase(transactionRepo)

	// Create subscription and maintenance use cases
	listSubscriptionsUseCase := subscription.NewListSubscriptionsUseCase(transactionRepo)
	resetDataUseCase := maintenance.NewResetDataUseCase(store, notifier)

	// Create controllers
	healthController := controller.NewHealthController(storageHealthChecker)
	accountController := controller.NewAccountController(
		listAccountsUseCase,
		createAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		addMoneyUseCase,
		deleteGoalUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		addCategoryUseCase,
		deleteCategoryUseCase,
	)
	userController := controller.NewUserController(getUserUseCase, updateUserUseCase)
	dashboardController := controller.NewDashboardController(
		metricsUseCase,
		dailySeriesUseCase,
		monthlySeriesUseCase,
		categoryBreakdownUseCase,
	)
	subscriptionController := controller.NewSubscriptionController(listSubscriptionsUseCase)
	notificationController := controller.NewNotificationController(notifier)
	dataController := controller.NewDataController(resetDataUseCase)

	// Create middleware
	// Use higher rate limits for the test environment to prevent flaky tests
	var resetRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		resetRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		resetRateLimiter = middleware.NewRateLimiter()
	}

	r := router.NewRouter(
		healthController,
		accountController,
		transactionController,
		budgetController,
		goalController,
		categoryController,
		userController,
		dashboardController,
		subscriptionController,
		notificationController,
		dataController,
		resetRateLimiter,
	)

	return &Injector{
		Config:   cfg,
		Store:    store,
		Notifier: notifier,
		Router:   r,
	}, nil
}
