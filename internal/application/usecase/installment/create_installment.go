// Package installment contains installment-related use cases.
package installment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// CreateInstallmentInput represents the input for installment creation.
type CreateInstallmentInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID

	Description       string
	TotalAmount       decimal.Decimal
	TotalInstallments int
	Type              entity.InstallmentType
	CardID            *uuid.UUID
}

// CreateInstallmentOutput represents the output of installment creation.
type CreateInstallmentOutput struct {
	Installment *entity.Installment
}

// CreateInstallmentUseCase handles installment creation logic.
type CreateInstallmentUseCase struct {
	walletRepo      adapter.WalletRepository
	installmentRepo adapter.InstallmentRepository
	idGen           adapter.IDGenerator
	cache           adapter.DashboardCache // optional
}

// NewCreateInstallmentUseCase creates a new CreateInstallmentUseCase instance.
func NewCreateInstallmentUseCase(
	walletRepo adapter.WalletRepository,
	installmentRepo adapter.InstallmentRepository,
	idGen adapter.IDGenerator,
	cache adapter.DashboardCache,
) *CreateInstallmentUseCase {
	return &CreateInstallmentUseCase{
		walletRepo:      walletRepo,
		installmentRepo: installmentRepo,
		idGen:           idGen,
		cache:           cache,
	}
}

// Execute validates and creates the installment.
func (uc *CreateInstallmentUseCase) Execute(ctx context.Context, input CreateInstallmentInput) (*CreateInstallmentOutput, error) {
	if input.TotalInstallments <= 0 {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"total installments must be greater than zero",
			domainerror.ErrInvalidInstallmentCount,
		)
	}
	if input.Type == entity.InstallmentTypeCreditCard && input.CardID == nil {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInstallmentCardRequired,
			"credit_card installments require a card",
			domainerror.ErrInstallmentCardRequired,
		)
	}

	snapshot, err := uc.walletRepo.GetSnapshot(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet snapshot: %w", err)
	}
	if snapshot.Wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}
	if input.CardID != nil {
		if _, ok := snapshot.FindCard(*input.CardID); !ok {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeCardNotFound,
				"credit card not found in wallet",
				domainerror.ErrCardNotFound,
			)
		}
	}

	created := entity.NewInstallment(
		uc.idGen.NewID(),
		input.WalletID,
		input.Description,
		input.TotalAmount,
		input.TotalInstallments,
		input.Type,
		input.CardID,
	)

	if err := uc.installmentRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create installment: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return &CreateInstallmentOutput{Installment: created}, nil
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
