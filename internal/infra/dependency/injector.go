// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/wallet-tracker/backend/config"
	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/application/usecase/budget"
	"github.com/wallet-tracker/backend/internal/application/usecase/creditcard"
	"github.com/wallet-tracker/backend/internal/application/usecase/fixedincome"
	"github.com/wallet-tracker/backend/internal/application/usecase/installment"
	"github.com/wallet-tracker/backend/internal/application/usecase/report"
	"github.com/wallet-tracker/backend/internal/application/usecase/transaction"
	"github.com/wallet-tracker/backend/internal/application/usecase/wallet"
	"github.com/wallet-tracker/backend/internal/infra/server/router"
	"github.com/wallet-tracker/backend/internal/integration/adapters"
	"github.com/wallet-tracker/backend/internal/integration/cache"
	"github.com/wallet-tracker/backend/internal/integration/email"
	"github.com/wallet-tracker/backend/internal/integration/email/templates"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/wallet-tracker/backend/internal/integration/persistence"
)

// Injector holds the wired application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector wires repositories, use cases, controllers, and the router.
// The redis client may be nil; dashboards are then recomputed on every call.
// The email sender may be nil; budget alerts are then queued but not delivered.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	emailSender adapter.EmailSender,
	dbHealthChecker func() bool,
) (*Injector, error) {
	// Repositories
	walletRepo := persistence.NewWalletRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	fixedIncomeRepo := persistence.NewFixedIncomeRepository(db)
	installmentRepo := persistence.NewInstallmentRepository(db)
	cardRepo := persistence.NewCreditCardRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters
	idGen := adapters.NewIDGenerator()
	var dashboardCache adapter.DashboardCache
	if redisClient != nil {
		dashboardCache = cache.NewDashboardCache(redisClient, cfg.Redis.DashboardTTL)
	}
	alerts := email.NewService(emailQueueRepo)

	var emailWorker *email.Worker
	if emailSender != nil {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize email templates: %w", err)
		}
		emailWorker = email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	}

	// Wallet use cases
	createWallet := wallet.NewCreateWalletUseCase(walletRepo, idGen)
	getWallet := wallet.NewGetWalletUseCase(walletRepo)
	listWallets := wallet.NewListWalletsUseCase(walletRepo)
	updateWallet := wallet.NewUpdateWalletUseCase(walletRepo, dashboardCache)
	deleteWallet := wallet.NewDeleteWalletUseCase(walletRepo, dashboardCache)
	normalizeWallet := wallet.NewNormalizeWalletUseCase(walletRepo, installmentRepo, dashboardCache)

	// Transaction use cases
	createTransaction := transaction.NewCreateTransactionUseCase(walletRepo, transactionRepo, idGen, dashboardCache, alerts)
	listTransactions := transaction.NewListTransactionsUseCase(walletRepo, transactionRepo)
	deleteTransaction := transaction.NewDeleteTransactionUseCase(walletRepo, transactionRepo, installmentRepo, fixedIncomeRepo, budgetRepo, dashboardCache)

	// Budget use cases
	upsertBudget := budget.NewUpsertBudgetUseCase(walletRepo, budgetRepo, idGen, dashboardCache)
	listBudgets := budget.NewListBudgetsUseCase(walletRepo, budgetRepo)
	deleteBudget := budget.NewDeleteBudgetUseCase(walletRepo, budgetRepo, dashboardCache)
	recordRecurrentPayment := budget.NewRecordRecurrentPaymentUseCase(walletRepo, budgetRepo, transactionRepo, idGen, dashboardCache)

	// Fixed income use cases
	createFixedIncome := fixedincome.NewCreateFixedIncomeUseCase(walletRepo, fixedIncomeRepo, idGen, dashboardCache)
	updateFixedIncome := fixedincome.NewUpdateFixedIncomeUseCase(walletRepo, fixedIncomeRepo, dashboardCache)
	deleteFixedIncome := fixedincome.NewDeleteFixedIncomeUseCase(walletRepo, fixedIncomeRepo, dashboardCache)
	setReceived := fixedincome.NewSetReceivedUseCase(walletRepo, fixedIncomeRepo, transactionRepo, idGen, dashboardCache)

	// Installment use cases
	createInstallment := installment.NewCreateInstallmentUseCase(walletRepo, installmentRepo, idGen, dashboardCache)
	updateInstallment := installment.NewUpdateInstallmentUseCase(walletRepo, installmentRepo, dashboardCache)
	deleteInstallment := installment.NewDeleteInstallmentUseCase(walletRepo, installmentRepo, dashboardCache)
	togglePayment := installment.NewTogglePaymentUseCase(walletRepo, installmentRepo, dashboardCache)

	// Credit card use cases
	createCard := creditcard.NewCreateCreditCardUseCase(walletRepo, cardRepo, idGen, dashboardCache)
	updateCard := creditcard.NewUpdateCreditCardUseCase(walletRepo, cardRepo, dashboardCache)
	deleteCard := creditcard.NewDeleteCreditCardUseCase(walletRepo, cardRepo, dashboardCache)
	payCardBill := creditcard.NewPayCardBillUseCase(walletRepo, transactionRepo, installmentRepo, idGen, dashboardCache)

	// Report use cases
	getDashboard := report.NewGetDashboardUseCase(walletRepo, dashboardCache)
	getComparison := report.NewGetComparisonUseCase(walletRepo)

	// Controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	walletController := controller.NewWalletController(createWallet, getWallet, listWallets, updateWallet, deleteWallet, normalizeWallet)
	transactionController := controller.NewTransactionController(createTransaction, listTransactions, deleteTransaction)
	budgetController := controller.NewBudgetController(upsertBudget, listBudgets, deleteBudget, recordRecurrentPayment)
	fixedIncomeController := controller.NewFixedIncomeController(createFixedIncome, updateFixedIncome, deleteFixedIncome, setReceived)
	installmentController := controller.NewInstallmentController(createInstallment, updateInstallment, deleteInstallment, togglePayment)
	creditCardController := controller.NewCreditCardController(createCard, updateCard, deleteCard, payCardBill)
	reportController := controller.NewReportController(getDashboard, getComparison)

	// Middleware
	tokenVerifier := adapters.NewJWTTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	authMiddleware := middleware.NewAuthMiddleware(tokenVerifier)
	writeRateLimiter := middleware.NewRateLimiter()

	apiRouter := router.NewRouter(
		healthController,
		walletController,
		transactionController,
		budgetController,
		fixedIncomeController,
		installmentController,
		creditCardController,
		reportController,
		writeRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      apiRouter,
		EmailWorker: emailWorker,
	}, nil
}
