package installment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// DeleteInstallmentInput represents the input for installment deletion.
type DeleteInstallmentInput struct {
	UserID        uuid.UUID
	WalletID      uuid.UUID
	InstallmentID uuid.UUID
}

// DeleteInstallmentUseCase handles installment deletion logic.
type DeleteInstallmentUseCase struct {
	walletRepo      adapter.WalletRepository
	installmentRepo adapter.InstallmentRepository
	cache           adapter.DashboardCache // optional
}

// NewDeleteInstallmentUseCase creates a new DeleteInstallmentUseCase instance.
func NewDeleteInstallmentUseCase(
	walletRepo adapter.WalletRepository,
	installmentRepo adapter.InstallmentRepository,
	cache adapter.DashboardCache,
) *DeleteInstallmentUseCase {
	return &DeleteInstallmentUseCase{
		walletRepo:      walletRepo,
		installmentRepo: installmentRepo,
		cache:           cache,
	}
}

// Execute deletes the installment.
func (uc *DeleteInstallmentUseCase) Execute(ctx context.Context, input DeleteInstallmentInput) error {
	snapshot, err := uc.walletRepo.GetSnapshot(ctx, input.WalletID)
	if err != nil {
		return fmt.Errorf("failed to load wallet snapshot: %w", err)
	}
	if snapshot.Wallet.UserID != input.UserID {
		return domainerror.ErrWalletNotFound
	}
	if _, ok := snapshot.FindInstallment(input.InstallmentID); !ok {
		return domainerror.ErrInstallmentNotFound
	}

	if err := uc.installmentRepo.Delete(ctx, input.InstallmentID); err != nil {
		return fmt.Errorf("failed to delete installment: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return nil
}
