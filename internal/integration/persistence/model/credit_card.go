package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// CreditCardModel represents the credit_cards table in the database.
type CreditCardModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WalletID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Limit         decimal.Decimal `gorm:"column:credit_limit;type:decimal(15,2);not null;default:0"`
	BankAvailable decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CreditCardModel.
func (CreditCardModel) TableName() string {
	return "credit_cards"
}

// ToEntity converts a CreditCardModel to a domain CreditCard entity.
func (m *CreditCardModel) ToEntity() *entity.CreditCard {
	return &entity.CreditCard{
		ID:            m.ID,
		WalletID:      m.WalletID,
		Name:          m.Name,
		Limit:         m.Limit,
		BankAvailable: m.BankAvailable,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CreditCardModelFromEntity creates a CreditCardModel from a domain CreditCard entity.
func CreditCardModelFromEntity(card *entity.CreditCard) *CreditCardModel {
	return &CreditCardModel{
		ID:            card.ID,
		WalletID:      card.WalletID,
		Name:          card.Name,
		Limit:         card.Limit,
		BankAvailable: card.BankAvailable,
		CreatedAt:     card.CreatedAt,
		UpdatedAt:     card.UpdatedAt,
	}
}
