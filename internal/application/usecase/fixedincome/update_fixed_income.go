package fixedincome

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// UpdateFixedIncomeInput represents the input for updating a fixed income.
// Nil fields are left unchanged.
type UpdateFixedIncomeInput struct {
	UserID        uuid.UUID
	WalletID      uuid.UUID
	FixedIncomeID uuid.UUID

	Name           *string
	ExpectedAmount *decimal.Decimal
}

// UpdateFixedIncomeOutput represents the output of updating a fixed income.
type UpdateFixedIncomeOutput struct {
	FixedIncome *entity.FixedIncome
}

// UpdateFixedIncomeUseCase handles fixed income update logic.
type UpdateFixedIncomeUseCase struct {
	walletRepo      adapter.WalletRepository
	fixedIncomeRepo adapter.FixedIncomeRepository
	cache           adapter.DashboardCache // optional
}

// NewUpdateFixedIncomeUseCase creates a new UpdateFixedIncomeUseCase instance.
func NewUpdateFixedIncomeUseCase(
	walletRepo adapter.WalletRepository,
	fixedIncomeRepo adapter.FixedIncomeRepository,
	cache adapter.DashboardCache,
) *UpdateFixedIncomeUseCase {
	return &UpdateFixedIncomeUseCase{
		walletRepo:      walletRepo,
		fixedIncomeRepo: fixedIncomeRepo,
		cache:           cache,
	}
}

// Execute applies the requested changes to the fixed income line.
func (uc *UpdateFixedIncomeUseCase) Execute(ctx context.Context, input UpdateFixedIncomeInput) (*UpdateFixedIncomeOutput, error) {
	found, err := uc.loadOwned(ctx, input.UserID, input.WalletID, input.FixedIncomeID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewFixedIncomeError(
				domainerror.ErrCodeFixedIncomeNameRequired,
				"fixed income name is required",
				domainerror.ErrFixedIncomeNameRequired,
			)
		}
		found.Name = name
	}
	if input.ExpectedAmount != nil {
		found.ExpectedAmount = *input.ExpectedAmount
	}
	found.UpdatedAt = time.Now().UTC()

	if err := uc.fixedIncomeRepo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("failed to update fixed income: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return &UpdateFixedIncomeOutput{FixedIncome: found}, nil
}

func (uc *UpdateFixedIncomeUseCase) loadOwned(ctx context.Context, userID, walletID, incomeID uuid.UUID) (*entity.FixedIncome, error) {
	wallet, err := uc.walletRepo.FindByID(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	if wallet == nil || wallet.UserID != userID {
		return nil, domainerror.ErrWalletNotFound
	}

	found, err := uc.fixedIncomeRepo.FindByID(ctx, incomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixed income: %w", err)
	}
	if found == nil || found.WalletID != walletID {
		return nil, domainerror.ErrFixedIncomeNotFound
	}
	return found, nil
}
