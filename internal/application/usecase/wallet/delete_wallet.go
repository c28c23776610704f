package wallet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// DeleteWalletInput represents the input for wallet deletion.
type DeleteWalletInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
}

// DeleteWalletUseCase handles wallet deletion logic.
type DeleteWalletUseCase struct {
	walletRepo adapter.WalletRepository
	cache      adapter.DashboardCache // optional
}

// NewDeleteWalletUseCase creates a new DeleteWalletUseCase instance.
func NewDeleteWalletUseCase(walletRepo adapter.WalletRepository, cache adapter.DashboardCache) *DeleteWalletUseCase {
	return &DeleteWalletUseCase{
		walletRepo: walletRepo,
		cache:      cache,
	}
}

// Execute deletes the wallet and everything it owns. Deleting the user's
// only remaining wallet is refused so the account never ends up empty.
func (uc *DeleteWalletUseCase) Execute(ctx context.Context, input DeleteWalletInput) error {
	found, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		return fmt.Errorf("failed to load wallet: %w", err)
	}
	if found == nil || found.UserID != input.UserID {
		return domainerror.ErrWalletNotFound
	}

	count, err := uc.walletRepo.CountByUserID(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to count wallets: %w", err)
	}
	if count <= 1 {
		return domainerror.NewWalletError(
			domainerror.ErrCodeLastWallet,
			"cannot delete the last remaining wallet",
			domainerror.ErrLastWallet,
		)
	}

	if err := uc.walletRepo.Delete(ctx, input.WalletID); err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)
	slog.Info("Wallet deleted", "wallet_id", input.WalletID, "user_id", input.UserID)

	return nil
}

// invalidateDashboard drops the wallet's cached dashboards. Cache failures
// are logged, never surfaced: a stale miss is recomputed on read.
func invalidateDashboard(ctx context.Context, cache adapter.DashboardCache, walletID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateWallet(ctx, walletID); err != nil {
		slog.Warn("Failed to invalidate dashboard cache", "wallet_id", walletID, "error", err)
	}
}
