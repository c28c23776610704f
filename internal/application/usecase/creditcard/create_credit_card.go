// Package creditcard contains credit card-related use cases.
package creditcard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// CreateCreditCardInput represents the input for credit card creation.
type CreateCreditCardInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
	Name     string
	Limit    decimal.Decimal
}

// CreateCreditCardOutput represents the output of credit card creation.
type CreateCreditCardOutput struct {
	CreditCard *entity.CreditCard
}

// CreateCreditCardUseCase handles credit card creation logic.
type CreateCreditCardUseCase struct {
	walletRepo adapter.WalletRepository
	cardRepo   adapter.CreditCardRepository
	idGen      adapter.IDGenerator
	cache      adapter.DashboardCache // optional
}

// NewCreateCreditCardUseCase creates a new CreateCreditCardUseCase instance.
func NewCreateCreditCardUseCase(
	walletRepo adapter.WalletRepository,
	cardRepo adapter.CreditCardRepository,
	idGen adapter.IDGenerator,
	cache adapter.DashboardCache,
) *CreateCreditCardUseCase {
	return &CreateCreditCardUseCase{
		walletRepo: walletRepo,
		cardRepo:   cardRepo,
		idGen:      idGen,
		cache:      cache,
	}
}

// Execute creates the credit card.
func (uc *CreateCreditCardUseCase) Execute(ctx context.Context, input CreateCreditCardInput) (*CreateCreditCardOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameRequired,
			"card name is required",
			domainerror.ErrWalletNameRequired,
		)
	}

	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	if wallet == nil || wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	created := entity.NewCreditCard(uc.idGen.NewID(), input.WalletID, name, input.Limit)

	if err := uc.cardRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return &CreateCreditCardOutput{CreditCard: created}, nil
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
