package fixedincome

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// DeleteFixedIncomeInput represents the input for fixed income deletion.
type DeleteFixedIncomeInput struct {
	UserID        uuid.UUID
	WalletID      uuid.UUID
	FixedIncomeID uuid.UUID
}

// DeleteFixedIncomeUseCase handles fixed income deletion logic. Synthetic
// transactions created by past realizations stay in the ledger; they are real
// money that was received.
type DeleteFixedIncomeUseCase struct {
	walletRepo      adapter.WalletRepository
	fixedIncomeRepo adapter.FixedIncomeRepository
	cache           adapter.DashboardCache // optional
}

// NewDeleteFixedIncomeUseCase creates a new DeleteFixedIncomeUseCase instance.
func NewDeleteFixedIncomeUseCase(
	walletRepo adapter.WalletRepository,
	fixedIncomeRepo adapter.FixedIncomeRepository,
	cache adapter.DashboardCache,
) *DeleteFixedIncomeUseCase {
	return &DeleteFixedIncomeUseCase{
		walletRepo:      walletRepo,
		fixedIncomeRepo: fixedIncomeRepo,
		cache:           cache,
	}
}

// Execute deletes the fixed income line.
func (uc *DeleteFixedIncomeUseCase) Execute(ctx context.Context, input DeleteFixedIncomeInput) error {
	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		return fmt.Errorf("failed to load wallet: %w", err)
	}
	if wallet == nil || wallet.UserID != input.UserID {
		return domainerror.ErrWalletNotFound
	}

	found, err := uc.fixedIncomeRepo.FindByID(ctx, input.FixedIncomeID)
	if err != nil {
		return fmt.Errorf("failed to load fixed income: %w", err)
	}
	if found == nil || found.WalletID != input.WalletID {
		return domainerror.ErrFixedIncomeNotFound
	}

	if err := uc.fixedIncomeRepo.Delete(ctx, input.FixedIncomeID); err != nil {
		return fmt.Errorf("failed to delete fixed income: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return nil
}
