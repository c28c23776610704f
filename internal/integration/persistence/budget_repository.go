package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
	"github.com/wallet-tracker/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates the budget or replaces the existing row for its category.
func (r *budgetRepository) Upsert(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetModelFromEntity(budget)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallet_id"}, {Name: "category"}},
			UpdateAll: true,
		}).
		Create(budgetModel)
	if result.Error != nil {
		return fmt.Errorf("failed to upsert budget: %w", result.Error)
	}
	return nil
}

// FindByWallet retrieves all budgets of a wallet.
func (r *budgetRepository) FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.Budget, error) {
	var models []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("category ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find budgets: %w", result.Error)
	}

	budgets := make([]*entity.Budget, len(models))
	for i, m := range models {
		budgets[i] = m.ToEntity()
	}
	return budgets, nil
}

// FindByWalletAndCategory retrieves the budget for one category.
func (r *budgetRepository) FindByWalletAndCategory(ctx context.Context, walletID uuid.UUID, category string) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("wallet_id = ? AND category = ?", walletID, category).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to find budget: %w", result.Error)
	}
	return budgetModel.ToEntity(), nil
}

// Delete removes the budget for a category.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BudgetModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}
