package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	WalletID      uuid.UUID
	TransactionID uuid.UUID
}

// DeleteCascade lists the side effects of removing one transaction: entities
// whose linked state must be rolled back alongside the delete.
type DeleteCascade struct {
	Installments []*entity.Installment
	FixedIncomes []*entity.FixedIncome
	Budgets      []*entity.Budget
}

// DeleteTransactionUseCase handles transaction deletion and its cascades.
type DeleteTransactionUseCase struct {
	walletRepo      adapter.WalletRepository
	transactionRepo adapter.TransactionRepository
	installmentRepo adapter.InstallmentRepository
	fixedIncomeRepo adapter.FixedIncomeRepository
	budgetRepo      adapter.BudgetRepository
	cache           adapter.DashboardCache // optional
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	walletRepo adapter.WalletRepository,
	transactionRepo adapter.TransactionRepository,
	installmentRepo adapter.InstallmentRepository,
	fixedIncomeRepo adapter.FixedIncomeRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.DashboardCache,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		installmentRepo: installmentRepo,
		fixedIncomeRepo: fixedIncomeRepo,
		budgetRepo:      budgetRepo,
		cache:           cache,
	}
}

// Execute removes the transaction and rolls back every state it had advanced:
// installment counters it paid, fixed-income periods it realized, recurrent
// budget ledger entries it settled.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	snapshot, err := uc.walletRepo.GetSnapshot(ctx, input.WalletID)
	if err != nil {
		return fmt.Errorf("failed to load wallet snapshot: %w", err)
	}
	if snapshot.Wallet.UserID != input.UserID {
		return domainerror.ErrWalletNotFound
	}

	target, ok := snapshot.FindTransaction(input.TransactionID)
	if !ok {
		return domainerror.ErrTransactionNotFound
	}

	cascade := PlanDeleteCascade(snapshot, target)

	for _, installment := range cascade.Installments {
		if err := uc.installmentRepo.Update(ctx, installment); err != nil {
			return fmt.Errorf("failed to roll back installment: %w", err)
		}
	}
	for _, income := range cascade.FixedIncomes {
		if err := uc.fixedIncomeRepo.Update(ctx, income); err != nil {
			return fmt.Errorf("failed to roll back fixed income: %w", err)
		}
	}
	for _, budget := range cascade.Budgets {
		if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
			return fmt.Errorf("failed to roll back budget ledger: %w", err)
		}
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return nil
}

// PlanDeleteCascade computes the rollback for deleting the transaction. It is
// a pure function: affected entities are returned as modified copies and the
// snapshot itself is untouched.
func PlanDeleteCascade(snapshot *entity.WalletSnapshot, target *entity.Transaction) DeleteCascade {
	cascade := DeleteCascade{}

	// Card bill payments advanced installment counters; walk them back and
	// drop the history entries this transaction had locked.
	for _, paidID := range target.PaidInstallmentIDs {
		installment, ok := snapshot.FindInstallment(paidID)
		if !ok {
			continue
		}
		reverted := installment.Clone()
		for key, payment := range reverted.PaymentHistory {
			if payment.TransactionID != nil && *payment.TransactionID == target.ID {
				delete(reverted.PaymentHistory, key)
				if reverted.PaidInstallments > 0 {
					reverted.PaidInstallments--
				}
			}
		}
		cascade.Installments = append(cascade.Installments, reverted)
	}

	// A fixed-income realization marks its period as not received again.
	if target.IsFixedIncomePayment && target.FixedIncomeID != nil {
		if income, ok := snapshot.FindFixedIncome(*target.FixedIncomeID); ok {
			reverted := income.Clone()
			delete(reverted.Payments, target.PeriodKey)
			cascade.FixedIncomes = append(cascade.FixedIncomes, reverted)
		}
	}

	// A recurrent payment clears its entry from the budget's ledger.
	if target.IsRecurrentPayment {
		if budget, ok := snapshot.FindBudget(target.Category); ok {
			reverted := budget.Clone()
			delete(reverted.Payments, target.PeriodKey)
			cascade.Budgets = append(cascade.Budgets, reverted)
		}
	}

	return cascade
}
