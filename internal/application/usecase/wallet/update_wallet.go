package wallet

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

// UpdateWalletInput represents the input for updating a wallet. Nil fields
// are left unchanged.
type UpdateWalletInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID

	Name                  *string
	TransactionCategories map[string][]string
	BankDebitBalance      *decimal.Decimal

	// ManualSurplus sets the carry-over for one period.
	SurplusPeriodKey string
	SurplusAmount    *decimal.Decimal
}

// UpdateWalletOutput represents the output of updating a wallet.
type UpdateWalletOutput struct {
	Wallet *entity.Wallet
}

// UpdateWalletUseCase handles wallet update logic.
type UpdateWalletUseCase struct {
	walletRepo adapter.WalletRepository
	cache      adapter.DashboardCache // optional
}

// NewUpdateWalletUseCase creates a new UpdateWalletUseCase instance.
func NewUpdateWalletUseCase(walletRepo adapter.WalletRepository, cache adapter.DashboardCache) *UpdateWalletUseCase {
	return &UpdateWalletUseCase{
		walletRepo: walletRepo,
		cache:      cache,
	}
}

// Execute applies the requested changes to the wallet.
func (uc *UpdateWalletUseCase) Execute(ctx context.Context, input UpdateWalletInput) (*UpdateWalletOutput, error) {
	found, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	if found == nil || found.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeWalletNameRequired,
				"wallet name is required",
				domainerror.ErrWalletNameRequired,
			)
		}
		found.Name = name
	}

	if input.TransactionCategories != nil {
		categories := input.TransactionCategories
		if _, ok := categories[entity.CategoryIncome]; !ok {
			categories[entity.CategoryIncome] = nil
		}
		if _, ok := categories[entity.CategoryDebtPayment]; !ok {
			categories[entity.CategoryDebtPayment] = nil
		}
		found.TransactionCategories = categories
	}

	if input.BankDebitBalance != nil {
		found.BankDebitBalance = *input.BankDebitBalance
	}

	if input.SurplusPeriodKey != "" && input.SurplusAmount != nil {
		period, parseErr := entity.ParsePeriodKey(input.SurplusPeriodKey)
		if parseErr != nil {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeInvalidPeriodKey,
				fmt.Sprintf("invalid period key %q", input.SurplusPeriodKey),
				domainerror.ErrInvalidPeriodKey,
			)
		}
		if found.ManualSurplus == nil {
			found.ManualSurplus = make(map[string]decimal.Decimal)
		}
		found.ManualSurplus[period.Key()] = *input.SurplusAmount
	}

	found.UpdatedAt = time.Now().UTC()

	if err := uc.walletRepo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, found.ID)

	return &UpdateWalletOutput{Wallet: found}, nil
}
