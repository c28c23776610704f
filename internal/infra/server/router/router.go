// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/wallet-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	walletController      *controller.WalletController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	fixedIncomeController *controller.FixedIncomeController
	installmentController *controller.InstallmentController
	creditCardController  *controller.CreditCardController
	reportController      *controller.ReportController
	writeRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	walletController *controller.WalletController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	fixedIncomeController *controller.FixedIncomeController,
	installmentController *controller.InstallmentController,
	creditCardController *controller.CreditCardController,
	reportController *controller.ReportController,
	writeRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		walletController:      walletController,
		transactionController: transactionController,
		budgetController:      budgetController,
		fixedIncomeController: fixedIncomeController,
		installmentController: installmentController,
		creditCardController:  creditCardController,
		reportController:      reportController,
		writeRateLimiter:      writeRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every /api/v1 route requires
// authentication; writes additionally pass the IP rate limiter.
func (r *Router) setupAPIRoutes() {
	if r.walletController == nil || r.authMiddleware == nil {
		return
	}

	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	throttled := r.writeRateLimiter.Middleware()

	wallets := v1.Group("/wallets")
	{
		wallets.GET("", r.walletController.List)
		wallets.POST("", throttled, r.walletController.Create)
		wallets.GET("/:id", r.walletController.Get)
		wallets.PATCH("/:id", throttled, r.walletController.Update)
		wallets.DELETE("/:id", throttled, r.walletController.Delete)
		wallets.POST("/:id/normalize", throttled, r.walletController.Normalize)

		wallets.GET("/:id/dashboard", r.reportController.Dashboard)
		wallets.GET("/:id/comparison", r.reportController.Comparison)

		transactions := wallets.Group("/:id/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", throttled, r.transactionController.Create)
			transactions.DELETE("/:transactionId", throttled, r.transactionController.Delete)
		}

		budgets := wallets.Group("/:id/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.PUT("", throttled, r.budgetController.Upsert)
			budgets.DELETE("/:category", throttled, r.budgetController.Delete)
			budgets.POST("/:category/payments", throttled, r.budgetController.RecordPayment)
		}

		fixedIncomes := wallets.Group("/:id/fixed-incomes")
		{
			fixedIncomes.POST("", throttled, r.fixedIncomeController.Create)
			fixedIncomes.PATCH("/:incomeId", throttled, r.fixedIncomeController.Update)
			fixedIncomes.DELETE("/:incomeId", throttled, r.fixedIncomeController.Delete)
			fixedIncomes.PUT("/:incomeId/received", throttled, r.fixedIncomeController.SetReceived)
		}

		installments := wallets.Group("/:id/installments")
		{
			installments.POST("", throttled, r.installmentController.Create)
			installments.PATCH("/:installmentId", throttled, r.installmentController.Update)
			installments.DELETE("/:installmentId", throttled, r.installmentController.Delete)
			installments.POST("/:installmentId/toggle-payment", throttled, r.installmentController.TogglePayment)
		}

		cards := wallets.Group("/:id/cards")
		{
			cards.POST("", throttled, r.creditCardController.Create)
			cards.PATCH("/:cardId", throttled, r.creditCardController.Update)
			cards.DELETE("/:cardId", throttled, r.creditCardController.Delete)
			cards.POST("/:cardId/pay-bill", throttled, r.creditCardController.PayBill)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
