// Package fixedincome contains fixed income-related use cases.
package fixedincome

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

// CreateFixedIncomeInput represents the input for fixed income creation.
type CreateFixedIncomeInput struct {
	UserID         uuid.UUID
	WalletID       uuid.UUID
	Name           string
	ExpectedAmount decimal.Decimal
}

// CreateFixedIncomeOutput represents the output of fixed income creation.
type CreateFixedIncomeOutput struct {
	FixedIncome *entity.FixedIncome
}

// CreateFixedIncomeUseCase handles fixed income creation logic.
type CreateFixedIncomeUseCase struct {
	walletRepo      adapter.WalletRepository
	fixedIncomeRepo adapter.FixedIncomeRepository
	idGen           adapter.IDGenerator
	cache           adapter.DashboardCache // optional
}

// NewCreateFixedIncomeUseCase creates a new CreateFixedIncomeUseCase instance.
func NewCreateFixedIncomeUseCase(
	walletRepo adapter.WalletRepository,
	fixedIncomeRepo adapter.FixedIncomeRepository,
	idGen adapter.IDGenerator,
	cache adapter.DashboardCache,
) *CreateFixedIncomeUseCase {
	return &CreateFixedIncomeUseCase{
		walletRepo:      walletRepo,
		fixedIncomeRepo: fixedIncomeRepo,
		idGen:           idGen,
		cache:           cache,
	}
}

// Execute creates the fixed income line.
func (uc *CreateFixedIncomeUseCase) Execute(ctx context.Context, input CreateFixedIncomeInput) (*CreateFixedIncomeOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewFixedIncomeError(
			domainerror.ErrCodeFixedIncomeNameRequired,
			"fixed income name is required",
			domainerror.ErrFixedIncomeNameRequired,
		)
	}

	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	if wallet == nil || wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	created := entity.NewFixedIncome(uc.idGen.NewID(), input.WalletID, name, input.ExpectedAmount)

	if err := uc.fixedIncomeRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create fixed income: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return &CreateFixedIncomeOutput{FixedIncome: created}, nil
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
