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

// creditCardRepository implements the adapter.CreditCardRepository interface.
type creditCardRepository struct {
	db *gorm.DB
}

// NewCreditCardRepository creates a new credit card repository instance.
func NewCreditCardRepository(db *gorm.DB) adapter.CreditCardRepository {
	return &creditCardRepository{
		db: db,
	}
}

func (r *creditCardRepository) Create(ctx context.Context, card *entity.CreditCard) error {
	cardModel := model.CreditCardModelFromEntity(card)
	if result := r.db.WithContext(ctx).Create(cardModel); result.Error != nil {
		return fmt.Errorf("failed to create credit card: %w", result.Error)
	}
	return nil
}

func (r *creditCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	var cardModel model.CreditCardModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to find credit card: %w", result.Error)
	}
	return cardModel.ToEntity(), nil
}

func (r *creditCardRepository) FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.CreditCard, error) {
	var models []model.CreditCardModel
	result := r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find credit cards: %w", result.Error)
	}

	cards := make([]*entity.CreditCard, len(models))
	for i, m := range models {
		cards[i] = m.ToEntity()
	}
	return cards, nil
}

func (r *creditCardRepository) Update(ctx context.Context, card *entity.CreditCard) error {
	cardModel := model.CreditCardModelFromEntity(card)
	if result := r.db.WithContext(ctx).Save(cardModel); result.Error != nil {
		return fmt.Errorf("failed to update credit card: %w", result.Error)
	}
	return nil
}

func (r *creditCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CreditCardModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete credit card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCardNotFound
	}
	return nil
}
