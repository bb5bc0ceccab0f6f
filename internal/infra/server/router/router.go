// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerly/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerly/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	accountController      *controller.AccountController
	transactionController  *controller.TransactionController
	budgetController       *controller.BudgetController
	goalController         *controller.GoalController
	categoryController     *controller.CategoryController
	userController         *controller.UserController
	dashboardController    *controller.DashboardController
	subscriptionController *controller.SubscriptionController
	notificationController *controller.NotificationController
	dataController         *controller.DataController
	resetRateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	categoryController *controller.CategoryController,
	userController *controller.UserController,
	dashboardController *controller.DashboardController,
	subscriptionController *controller.SubscriptionController,
	notificationController *controller.NotificationController,
	dataController *controller.DataController,
	resetRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:       healthController,
		accountController:      accountController,
		transactionController:  transactionController,
		budgetController:       budgetController,
		goalController:         goalController,
		categoryController:     categoryController,
		userController:         userController,
		dashboardController:    dashboardController,
		subscriptionController: subscriptionController,
		notificationController: notificationController,
		dataController:         dataController,
		resetRateLimiter:       resetRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.accountController != nil {
			accounts := v1.Group("/accounts")
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.PATCH("/:id", r.accountController.Update)
				accounts.DELETE("/:id", r.accountController.Delete)
			}
		}

		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.budgetController != nil {
			budgets := v1.Group("/budgets")
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.PATCH("/:id", r.goalController.Update)
				goals.POST("/:id/add-money", r.goalController.AddMoney)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Add)
				categories.DELETE("/:name", r.categoryController.Delete)
			}
		}

		if r.userController != nil {
			user := v1.Group("/user")
			{
				user.GET("", r.userController.Get)
				user.PATCH("", r.userController.Update)
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/metrics", r.dashboardController.Metrics)
				dashboard.GET("/daily", r.dashboardController.Daily)
				dashboard.GET("/monthly", r.dashboardController.Monthly)
				dashboard.GET("/categories", r.dashboardController.Categories)
			}
		}

		if r.subscriptionController != nil {
			v1.GET("/subscriptions", r.subscriptionController.List)
		}

		if r.notificationController != nil {
			v1.GET("/notifications/latest", r.notificationController.Latest)
			v1.DELETE("/notifications/latest", r.notificationController.Clear)
		}

		// Reset is destructive, so it sits behind the rate limiter.
		if r.dataController != nil && r.resetRateLimiter != nil {
			v1.POST("/data/reset", r.resetRateLimiter.Middleware(), r.dataController.Reset)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
