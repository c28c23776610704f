// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// MaxWalletNameLength is the maximum allowed length for wallet names.
const MaxWalletNameLength = 100

// CreateWalletInput represents the input for wallet creation.
type CreateWalletInput struct {
	UserID uuid.UUID
	Name   string

	// Categories overrides the default category layout when non-nil.
	Categories map[string][]string
}

// CreateWalletOutput represents the output of wallet creation.
type CreateWalletOutput struct {
	Wallet *entity.Wallet
}

// CreateWalletUseCase handles wallet creation logic.
type CreateWalletUseCase struct {
	walletRepo adapter.WalletRepository
	idGen      adapter.IDGenerator
}

// NewCreateWalletUseCase creates a new CreateWalletUseCase instance.
func NewCreateWalletUseCase(walletRepo adapter.WalletRepository, idGen adapter.IDGenerator) *CreateWalletUseCase {
	return &CreateWalletUseCase{
		walletRepo: walletRepo,
		idGen:      idGen,
	}
}

// Execute performs the wallet creation. New wallets get the default category
// layout unless the input provides one; the reserved categories are always
// present either way.
func (uc *CreateWalletUseCase) Execute(ctx context.Context, input CreateWalletInput) (*CreateWalletOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameRequired,
			"wallet name is required",
			domainerror.ErrWalletNameRequired,
		)
	}
	if len(name) > MaxWalletNameLength {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameRequired,
			fmt.Sprintf("wallet name must not exceed %d characters", MaxWalletNameLength),
			domainerror.ErrWalletNameRequired,
		)
	}

	categories := input.Categories
	if categories == nil {
		categories = entity.DefaultTransactionCategories()
	} else {
		if _, ok := categories[entity.CategoryIncome]; !ok {
			categories[entity.CategoryIncome] = nil
		}
		if _, ok := categories[entity.CategoryDebtPayment]; !ok {
			categories[entity.CategoryDebtPayment] = nil
		}
	}

	created := entity.NewWallet(uc.idGen.NewID(), input.UserID, name, categories)

	if err := uc.walletRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	return &CreateWalletOutput{Wallet: created}, nil
}
