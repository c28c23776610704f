package fixedincome

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// SetReceivedInput represents the input for toggling a period's realization.
type SetReceivedInput struct {
	UserID        uuid.UUID
	WalletID      uuid.UUID
	FixedIncomeID uuid.UUID
	PeriodKey     string
	Amount        decimal.Decimal // only used when Received is true
	Received      bool
}

// SetReceivedOutput represents the output of toggling a realization.
type SetReceivedOutput struct {
	FixedIncome *entity.FixedIncome
	Transaction *entity.Transaction // nil when Received is false
}

// ReceivedPlan is the pure outcome of a realization toggle: the updated
// income, the synthetic transaction to create, and the one to remove.
type ReceivedPlan struct {
	Income            *entity.FixedIncome
	CreateTransaction *entity.Transaction
	DeleteTransaction *uuid.UUID
}

// SetReceivedUseCase toggles whether a fixed income was received for a
// period. Marking received materializes a synthetic income transaction so the
// money shows up in totals; unmarking removes exactly that transaction.
type SetReceivedUseCase struct {
	walletRepo      adapter.WalletRepository
	fixedIncomeRepo adapter.FixedIncomeRepository
	transactionRepo adapter.TransactionRepository
	idGen           adapter.IDGenerator
	cache           adapter.DashboardCache // optional
}

// NewSetReceivedUseCase creates a new SetReceivedUseCase instance.
func NewSetReceivedUseCase(
	walletRepo adapter.WalletRepository,
	fixedIncomeRepo adapter.FixedIncomeRepository,
	transactionRepo adapter.TransactionRepository,
	idGen adapter.IDGenerator,
	cache adapter.DashboardCache,
) *SetReceivedUseCase {
	return &SetReceivedUseCase{
		walletRepo:      walletRepo,
		fixedIncomeRepo: fixedIncomeRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
		cache:           cache,
	}
}

// Execute toggles the realization and applies the planned writes.
func (uc *SetReceivedUseCase) Execute(ctx context.Context, input SetReceivedInput) (*SetReceivedOutput, error) {
	period, err := entity.ParsePeriodKey(input.PeriodKey)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriodKey,
			fmt.Sprintf("invalid period key %q", input.PeriodKey),
			domainerror.ErrInvalidPeriodKey,
		)
	}
	if input.Received && !input.Amount.IsPositive() {
		return nil, domainerror.NewFixedIncomeError(
			domainerror.ErrCodeReceivedAmountRequired,
			"received amount must be greater than zero",
			domainerror.ErrReceivedAmountRequired,
		)
	}

	snapshot, err := uc.walletRepo.GetSnapshot(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet snapshot: %w", err)
	}
	if snapshot.Wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	income, ok := snapshot.FindFixedIncome(input.FixedIncomeID)
	if !ok {
		return nil, domainerror.ErrFixedIncomeNotFound
	}

	plan := PlanSetReceived(snapshot, income, period, input.Amount, input.Received, uc.idGen.NewID())

	if plan.DeleteTransaction != nil {
		if err := uc.transactionRepo.Delete(ctx, *plan.DeleteTransaction); err != nil {
			return nil, fmt.Errorf("failed to remove realization transaction: %w", err)
		}
	}
	if plan.CreateTransaction != nil {
		if err := uc.transactionRepo.Create(ctx, plan.CreateTransaction); err != nil {
			return nil, fmt.Errorf("failed to create realization transaction: %w", err)
		}
	}
	if err := uc.fixedIncomeRepo.Update(ctx, plan.Income); err != nil {
		return nil, fmt.Errorf("failed to update fixed income: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return &SetReceivedOutput{FixedIncome: plan.Income, Transaction: plan.CreateTransaction}, nil
}

// PlanSetReceived computes the writes for a realization toggle without
// touching the snapshot. Re-marking an already received period replaces the
// old synthetic transaction with a fresh one at the new amount.
func PlanSetReceived(
	snapshot *entity.WalletSnapshot,
	income *entity.FixedIncome,
	period entity.Period,
	amount decimal.Decimal,
	received bool,
	newTransactionID uuid.UUID,
) ReceivedPlan {
	periodKey := period.Key()
	updated := income.Clone()
	plan := ReceivedPlan{Income: updated}

	if existing := findRealization(snapshot, income.ID, periodKey); existing != nil {
		id := existing.ID
		plan.DeleteTransaction = &id
	}

	if !received {
		delete(updated.Payments, periodKey)
		return plan
	}

	if updated.Payments == nil {
		updated.Payments = make(map[string]entity.FixedIncomePayment)
	}
	updated.Payments[periodKey] = entity.FixedIncomePayment{Amount: amount, Received: true}

	incomeID := income.ID
	txn := entity.NewTransaction(
		newTransactionID,
		income.WalletID,
		period.Start(),
		income.Name,
		amount,
		entity.TransactionTypeIncome,
		entity.CategoryIncome,
		nil, nil,
	)
	txn.IsFixedIncomePayment = true
	txn.FixedIncomeID = &incomeID
	txn.PeriodKey = periodKey
	plan.CreateTransaction = txn

	return plan
}

// findRealization locates the synthetic transaction realizing the income for
// the period, if one exists.
func findRealization(snapshot *entity.WalletSnapshot, incomeID uuid.UUID, periodKey string) *entity.Transaction {
	for _, txn := range snapshot.Transactions {
		if txn.IsFixedIncomePayment &&
			txn.FixedIncomeID != nil && *txn.FixedIncomeID == incomeID &&
			txn.PeriodKey == periodKey {
			return txn
		}
	}
	return nil
}
