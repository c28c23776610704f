package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// DeleteCreditCardInput represents the input for credit card deletion.
type DeleteCreditCardInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
	CardID   uuid.UUID
}

// DeleteCreditCardUseCase handles credit card deletion logic. Transactions
// and installments keep their card reference; the engine treats dangling
// references as zero contributions.
type DeleteCreditCardUseCase struct {
	walletRepo adapter.WalletRepository
	cardRepo   adapter.CreditCardRepository
	cache      adapter.DashboardCache // optional
}

// NewDeleteCreditCardUseCase creates a new DeleteCreditCardUseCase instance.
func NewDeleteCreditCardUseCase(
	walletRepo adapter.WalletRepository,
	cardRepo adapter.CreditCardRepository,
	cache adapter.DashboardCache,
) *DeleteCreditCardUseCase {
	return &DeleteCreditCardUseCase{
		walletRepo: walletRepo,
		cardRepo:   cardRepo,
		cache:      cache,
	}
}

// Execute deletes the credit card.
func (uc *DeleteCreditCardUseCase) Execute(ctx context.Context, input DeleteCreditCardInput) error {
	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		return fmt.Errorf("failed to load wallet: %w", err)
	}
	if wallet == nil || wallet.UserID != input.UserID {
		return domainerror.ErrWalletNotFound
	}

	found, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return fmt.Errorf("failed to load credit card: %w", err)
	}
	if found == nil || found.WalletID != input.WalletID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCardNotFound,
			"credit card not found in wallet",
			domainerror.ErrCardNotFound,
		)
	}

	if err := uc.cardRepo.Delete(ctx, input.CardID); err != nil {
		return fmt.Errorf("failed to delete credit card: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return nil
}
