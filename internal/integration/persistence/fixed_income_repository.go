package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
	"github.com/wallet-tracker/backend/internal/integration/persistence/model"
)

// fixedIncomeRepository implements the adapter.FixedIncomeRepository interface.
type fixedIncomeRepository struct {
	db *gorm.DB
}

// NewFixedIncomeRepository creates a new fixed income repository instance.
func NewFixedIncomeRepository(db *gorm.DB) adapter.FixedIncomeRepository {
	return &fixedIncomeRepository{
		db: db,
	}
}

func (r *fixedIncomeRepository) Create(ctx context.Context, income *entity.FixedIncome) error {
	incomeModel := model.FixedIncomeModelFromEntity(income)
	if result := r.db.WithContext(ctx).Create(incomeModel); result.Error != nil {
		return fmt.Errorf("failed to create fixed income: %w", result.Error)
	}
	return nil
}

func (r *fixedIncomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedIncome, error) {
	var incomeModel model.FixedIncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFixedIncomeNotFound
		}
		return nil, fmt.Errorf("failed to find fixed income: %w", result.Error)
	}
	return incomeModel.ToEntity(), nil
}

func (r *fixedIncomeRepository) FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.FixedIncome, error) {
	var models []model.FixedIncomeModel
	result := r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find fixed incomes: %w", result.Error)
	}

	incomes := make([]*entity.FixedIncome, len(models))
	for i, m := range models {
		incomes[i] = m.ToEntity()
	}
	return incomes, nil
}

func (r *fixedIncomeRepository) Update(ctx context.Context, income *entity.FixedIncome) error {
	incomeModel := model.FixedIncomeModelFromEntity(income)
	if result := r.db.WithContext(ctx).Save(incomeModel); result.Error != nil {
		return fmt.Errorf("failed to update fixed income: %w", result.Error)
	}
	return nil
}

func (r *fixedIncomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FixedIncomeModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete fixed income: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFixedIncomeNotFound
	}
	return nil
}
