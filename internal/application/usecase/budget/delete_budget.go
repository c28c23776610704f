package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
	Category string
}

// DeleteBudgetUseCase handles budget deletion logic. Transactions in the
// category survive; only the plan is removed.
type DeleteBudgetUseCase struct {
	walletRepo adapter.WalletRepository
	budgetRepo adapter.BudgetRepository
	cache      adapter.DashboardCache // optional
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(
	walletRepo adapter.WalletRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.DashboardCache,
) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		walletRepo: walletRepo,
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute deletes the category's budget.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		return fmt.Errorf("failed to load wallet: %w", err)
	}
	if wallet == nil || wallet.UserID != input.UserID {
		return domainerror.ErrWalletNotFound
	}

	found, err := uc.budgetRepo.FindByWalletAndCategory(ctx, input.WalletID, input.Category)
	if err != nil {
		return fmt.Errorf("failed to load budget: %w", err)
	}
	if found == nil {
		return domainerror.ErrBudgetNotFound
	}

	if err := uc.budgetRepo.Delete(ctx, found.ID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return nil
}
