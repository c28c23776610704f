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

// installmentRepository implements the adapter.InstallmentRepository interface.
type installmentRepository struct {
	db *gorm.DB
}

// NewInstallmentRepository creates a new installment repository instance.
func NewInstallmentRepository(db *gorm.DB) adapter.InstallmentRepository {
	return &installmentRepository{
		db: db,
	}
}

func (r *installmentRepository) Create(ctx context.Context, installment *entity.Installment) error {
	installmentModel := model.InstallmentModelFromEntity(installment)
	if result := r.db.WithContext(ctx).Create(installmentModel); result.Error != nil {
		return fmt.Errorf("failed to create installment: %w", result.Error)
	}
	return nil
}

func (r *installmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Installment, error) {
	var installmentModel model.InstallmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&installmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInstallmentNotFound
		}
		return nil, fmt.Errorf("failed to find installment: %w", result.Error)
	}
	return installmentModel.ToEntity(), nil
}

func (r *installmentRepository) FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.Installment, error) {
	var models []model.InstallmentModel
	result := r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find installments: %w", result.Error)
	}

	installments := make([]*entity.Installment, len(models))
	for i, m := range models {
		installments[i] = m.ToEntity()
	}
	return installments, nil
}

func (r *installmentRepository) Update(ctx context.Context, installment *entity.Installment) error {
	installmentModel := model.InstallmentModelFromEntity(installment)
	if result := r.db.WithContext(ctx).Save(installmentModel); result.Error != nil {
		return fmt.Errorf("failed to update installment: %w", result.Error)
	}
	return nil
}

func (r *installmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InstallmentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete installment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInstallmentNotFound
	}
	return nil
}
