package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// GetWalletInput represents the input for retrieving a wallet.
type GetWalletInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
}

// GetWalletOutput represents the output of retrieving a wallet.
type GetWalletOutput struct {
	Wallet *entity.Wallet
}

// GetWalletUseCase handles wallet retrieval logic.
type GetWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewGetWalletUseCase creates a new GetWalletUseCase instance.
func NewGetWalletUseCase(walletRepo adapter.WalletRepository) *GetWalletUseCase {
	return &GetWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute retrieves the wallet, enforcing ownership. A wallet owned by
// another user is reported as not found, never as forbidden.
func (uc *GetWalletUseCase) Execute(ctx context.Context, input GetWalletInput) (*GetWalletOutput, error) {
	found, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	if found == nil || found.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	return &GetWalletOutput{Wallet: found}, nil
}
