package installment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// UpdateInstallmentInput represents the input for updating an installment.
// Nil fields are left unchanged.
type UpdateInstallmentInput struct {
	UserID        uuid.UUID
	WalletID      uuid.UUID
	InstallmentID uuid.UUID

	Description       *string
	TotalAmount       *decimal.Decimal
	TotalInstallments *int
	CardID            *uuid.UUID
}

// UpdateInstallmentOutput represents the output of updating an installment.
type UpdateInstallmentOutput struct {
	Installment *entity.Installment
}

// UpdateInstallmentUseCase handles installment update logic.
type UpdateInstallmentUseCase struct {
	walletRepo      adapter.WalletRepository
	installmentRepo adapter.InstallmentRepository
	cache           adapter.DashboardCache // optional
}

// NewUpdateInstallmentUseCase creates a new UpdateInstallmentUseCase instance.
func NewUpdateInstallmentUseCase(
	walletRepo adapter.WalletRepository,
	installmentRepo adapter.InstallmentRepository,
	cache adapter.DashboardCache,
) *UpdateInstallmentUseCase {
	return &UpdateInstallmentUseCase{
		walletRepo:      walletRepo,
		installmentRepo: installmentRepo,
		cache:           cache,
	}
}

// Execute applies the requested changes. Shrinking the total below the paid
// counter is refused so the amortization invariant holds.
func (uc *UpdateInstallmentUseCase) Execute(ctx context.Context, input UpdateInstallmentInput) (*UpdateInstallmentOutput, error) {
	snapshot, err := uc.walletRepo.GetSnapshot(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet snapshot: %w", err)
	}
	if snapshot.Wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	found, ok := snapshot.FindInstallment(input.InstallmentID)
	if !ok {
		return nil, domainerror.ErrInstallmentNotFound
	}
	updated := found.Clone()

	if input.Description != nil {
		updated.Description = *input.Description
	}
	if input.TotalAmount != nil {
		updated.TotalAmount = *input.TotalAmount
	}
	if input.TotalInstallments != nil {
		if *input.TotalInstallments <= 0 || *input.TotalInstallments < updated.PaidInstallments {
			return nil, domainerror.NewInstallmentError(
				domainerror.ErrCodeInvalidInstallmentCount,
				fmt.Sprintf("total installments must be at least the %d already paid", updated.PaidInstallments),
				domainerror.ErrInvalidInstallmentCount,
			)
		}
		updated.TotalInstallments = *input.TotalInstallments
	}
	if input.CardID != nil {
		if _, ok := snapshot.FindCard(*input.CardID); !ok {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeCardNotFound,
				"credit card not found in wallet",
				domainerror.ErrCardNotFound,
			)
		}
		updated.CardID = input.CardID
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := uc.installmentRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update installment: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return &UpdateInstallmentOutput{Installment: updated}, nil
}
