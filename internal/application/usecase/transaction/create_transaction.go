// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/application/usecase/report"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID

	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Category    string
	Subcategory *string
	CardID      *uuid.UUID

	// Alert recipient, taken from the authenticated user's claims.
	UserEmail string
	UserName  string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	walletRepo      adapter.WalletRepository
	transactionRepo adapter.TransactionRepository
	idGen           adapter.IDGenerator
	cache           adapter.DashboardCache      // optional
	alerts          adapter.BudgetAlertNotifier // optional
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	walletRepo adapter.WalletRepository,
	transactionRepo adapter.TransactionRepository,
	idGen adapter.IDGenerator,
	cache adapter.DashboardCache,
	alerts adapter.BudgetAlertNotifier,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
		cache:           cache,
		alerts:          alerts,
	}
}

// Execute validates and persists the transaction. When the new expense pushes
// its budget category over the critical threshold, an alert email is queued.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionInput(input); err != nil {
		return nil, err
	}

	snapshot, err := uc.walletRepo.GetSnapshot(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet snapshot: %w", err)
	}
	if snapshot.Wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	if input.Type == entity.TransactionTypeExpenseCredit {
		if _, ok := snapshot.FindCard(*input.CardID); !ok {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeCardNotFound,
				"credit card not found in wallet",
				domainerror.ErrCardNotFound,
			)
		}
	}

	created := entity.NewTransaction(
		uc.idGen.NewID(),
		input.WalletID,
		input.Date,
		input.Description,
		input.Amount,
		input.Type,
		input.Category,
		input.Subcategory,
		input.CardID,
	)

	if err := uc.transactionRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)
	uc.maybeQueueBudgetAlert(ctx, snapshot, created, input)

	return &CreateTransactionOutput{Transaction: created}, nil
}

// maybeQueueBudgetAlert queues a critical-threshold alert when this expense
// crossed the line. Alert failures never fail the write.
func (uc *CreateTransactionUseCase) maybeQueueBudgetAlert(
	ctx context.Context,
	snapshot *entity.WalletSnapshot,
	created *entity.Transaction,
	input CreateTransactionInput,
) {
	if uc.alerts == nil || input.UserEmail == "" || !created.IsExpense() || created.IsCardBillPayment() {
		return
	}

	period := entity.Period{Year: created.Date.Year(), Month: created.Date.Month()}
	before := report.SelectPeriod(snapshot.Transactions, period)
	after := append(append([]*entity.Transaction{}, before...), created)

	line, crossed := report.CriticalCrossing(snapshot, before, after, period.Key(), created.Category)
	if !crossed {
		return
	}

	err := uc.alerts.QueueBudgetAlert(ctx, adapter.QueueBudgetAlertInput{
		RecipientEmail: input.UserEmail,
		RecipientName:  input.UserName,
		WalletName:     snapshot.Wallet.Name,
		Category:       line.Category,
		PeriodKey:      period.Key(),
		Spent:          line.Spent.StringFixed(0),
		Total:          line.Total.StringFixed(0),
		Percentage:     line.RawPercentage.StringFixed(1),
	})
	if err != nil {
		slog.Warn("Failed to queue budget alert", "wallet_id", input.WalletID, "category", created.Category, "error", err)
	}
}

func validateTransactionInput(input CreateTransactionInput) error {
	if input.Amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount must be non-negative",
			domainerror.ErrNegativeAmount,
		)
	}

	switch input.Type {
	case entity.TransactionTypeIncome, entity.TransactionTypeExpenseDebit, entity.TransactionTypeExpenseCredit:
	default:
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("unknown transaction type %q", input.Type),
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Type == entity.TransactionTypeExpenseCredit && input.CardID == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCardRequired,
			"expense_credit transactions require a card",
			domainerror.ErrCardRequired,
		)
	}

	if input.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDate,
			"transaction date is required",
			domainerror.ErrInvalidDate,
		)
	}

	return nil
}

// invalidateDashboard drops the wallet's cached dashboards after a write.
func invalidateDashboard(ctx context.Context, cache adapter.DashboardCache, walletID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateWallet(ctx, walletID); err != nil {
		slog.Warn("Failed to invalidate dashboard cache", "wallet_id", walletID, "error", err)
	}
}
