// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// UpsertBudgetInput represents the input for creating or replacing a budget.
type UpsertBudgetInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID

	Category      string
	Type          entity.BudgetType
	Total         *decimal.Decimal
	Subcategories map[string]decimal.Decimal
	Config        entity.BudgetConfig
}

// UpsertBudgetOutput represents the output of a budget upsert.
type UpsertBudgetOutput struct {
	Budget *entity.Budget
}

// UpsertBudgetUseCase handles budget upsert logic. A wallet has at most one
// budget per category; upserting replaces the plan but keeps the payments
// ledger of the existing budget.
type UpsertBudgetUseCase struct {
	walletRepo adapter.WalletRepository
	budgetRepo adapter.BudgetRepository
	idGen      adapter.IDGenerator
	cache      adapter.DashboardCache // optional
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(
	walletRepo adapter.WalletRepository,
	budgetRepo adapter.BudgetRepository,
	idGen adapter.IDGenerator,
	cache adapter.DashboardCache,
) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		walletRepo: walletRepo,
		budgetRepo: budgetRepo,
		idGen:      idGen,
		cache:      cache,
	}
}

// Execute validates and upserts the budget for its category.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryRequired,
			"budget category is required",
			domainerror.ErrBudgetCategoryRequired,
		)
	}
	if category == entity.CategoryIncome || category == entity.CategoryDebtPayment {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeReservedCategory,
			fmt.Sprintf("category %q is reserved and cannot be budgeted", category),
			domainerror.ErrReservedCategory,
		)
	}
	if input.Type != entity.BudgetTypeRecurrent && input.Type != entity.BudgetTypeVariable {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetType,
			"budget type must be: recurrent or variable",
			domainerror.ErrInvalidBudgetType,
		)
	}
	if input.Type == entity.BudgetTypeRecurrent && len(input.Subcategories) > 0 && input.Total != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeDerivedTotal,
			"total is derived from subcategory budgets and cannot be set directly",
			domainerror.ErrDerivedTotal,
		)
	}

	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	if wallet == nil || wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	now := time.Now().UTC()
	upserted := &entity.Budget{
		ID:            uc.idGen.NewID(),
		WalletID:      input.WalletID,
		Category:      category,
		Type:          input.Type,
		Total:         input.Total,
		Subcategories: input.Subcategories,
		Payments:      make(map[string]entity.BudgetPayment),
		Config:        input.Config,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	existing, err := uc.budgetRepo.FindByWalletAndCategory(ctx, input.WalletID, category)
	if err == nil && existing != nil {
		upserted.ID = existing.ID
		upserted.Payments = existing.Payments
		upserted.CreatedAt = existing.CreatedAt
	}

	if err := uc.budgetRepo.Upsert(ctx, upserted); err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return &UpsertBudgetOutput{Budget: upserted}, nil
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
