package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// RecordRecurrentPaymentInput represents the input for settling a recurrent
// category's bill for one period.
type RecordRecurrentPaymentInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID

	Category    string
	Subcategory *string
	PeriodKey   string
	Amount      decimal.Decimal
	PaymentType entity.TransactionType
	CardID      *uuid.UUID
}

// RecordRecurrentPaymentOutput represents the output of settling a bill.
type RecordRecurrentPaymentOutput struct {
	Budget      *entity.Budget
	Transaction *entity.Transaction
}

// RecordRecurrentPaymentUseCase settles a recurrent category's bill: it
// writes the payments ledger and creates the linked expense transaction that
// makes the pending marker disappear.
type RecordRecurrentPaymentUseCase struct {
	walletRepo      adapter.WalletRepository
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	idGen           adapter.IDGenerator
	cache           adapter.DashboardCache // optional
}

// NewRecordRecurrentPaymentUseCase creates a new RecordRecurrentPaymentUseCase instance.
func NewRecordRecurrentPaymentUseCase(
	walletRepo adapter.WalletRepository,
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	idGen adapter.IDGenerator,
	cache adapter.DashboardCache,
) *RecordRecurrentPaymentUseCase {
	return &RecordRecurrentPaymentUseCase{
		walletRepo:      walletRepo,
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
		cache:           cache,
	}
}

// Execute records the payment and creates the linked transaction.
func (uc *RecordRecurrentPaymentUseCase) Execute(ctx context.Context, input RecordRecurrentPaymentInput) (*RecordRecurrentPaymentOutput, error) {
	period, err := entity.ParsePeriodKey(input.PeriodKey)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriodKey,
			fmt.Sprintf("invalid period key %q", input.PeriodKey),
			domainerror.ErrInvalidPeriodKey,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount must be non-negative",
			domainerror.ErrNegativeAmount,
		)
	}

	paymentType := input.PaymentType
	switch paymentType {
	case entity.TransactionTypeExpenseDebit, entity.TransactionTypeExpenseCredit:
	case "":
		paymentType = entity.TransactionTypeExpenseDebit
	default:
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("recurrent payments must be expenses, got %q", paymentType),
			domainerror.ErrInvalidTransactionType,
		)
	}

	snapshot, err := uc.walletRepo.GetSnapshot(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet snapshot: %w", err)
	}
	if snapshot.Wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	found, ok := snapshot.FindBudget(input.Category)
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	if found.Type != entity.BudgetTypeRecurrent {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNotRecurrent,
			fmt.Sprintf("category %q is not recurrent", input.Category),
			domainerror.ErrNotRecurrent,
		)
	}

	cardID := input.CardID
	if cardID == nil && paymentType == entity.TransactionTypeExpenseCredit {
		cardID = found.Config.CardID
	}
	if paymentType == entity.TransactionTypeExpenseCredit {
		if cardID == nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeCardRequired,
				"expense_credit payments require a card",
				domainerror.ErrCardRequired,
			)
		}
		if _, ok := snapshot.FindCard(*cardID); !ok {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeCardNotFound,
				"credit card not found in wallet",
				domainerror.ErrCardNotFound,
			)
		}
	}

	updated := found.Clone()
	if updated.Payments == nil {
		updated.Payments = make(map[string]entity.BudgetPayment)
	}
	updated.Payments[period.Key()] = entity.BudgetPayment{
		Amount:      input.Amount,
		PaymentType: paymentType,
		CardID:      cardID,
	}

	description := input.Category
	if input.Subcategory != nil {
		description = fmt.Sprintf("%s - %s", input.Category, *input.Subcategory)
	}
	created := entity.NewTransaction(
		uc.idGen.NewID(),
		input.WalletID,
		period.Start(),
		description,
		input.Amount,
		paymentType,
		input.Category,
		input.Subcategory,
		cardID,
	)
	created.IsRecurrentPayment = true
	created.PeriodKey = period.Key()

	if err := uc.transactionRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create payment transaction: %w", err)
	}
	if err := uc.budgetRepo.Upsert(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update budget ledger: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return &RecordRecurrentPaymentOutput{Budget: updated, Transaction: created}, nil
}
