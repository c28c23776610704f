// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// WalletModel represents the wallets table in the database.
type WalletModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name                  string          `gorm:"type:varchar(100);not null"`
	BankDebitBalance      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	BankCreditBalance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	ManualSurplus         string          `gorm:"type:jsonb;not null;default:'{}'"`
	TransactionCategories string          `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt             time.Time       `gorm:"not null"`
	UpdatedAt             time.Time       `gorm:"not null"`
}

// TableName returns the table name for the WalletModel.
func (WalletModel) TableName() string {
	return "wallets"
}

// ToEntity converts a WalletModel to a domain Wallet entity.
func (m *WalletModel) ToEntity() *entity.Wallet {
	surplus := make(map[string]decimal.Decimal)
	unmarshalColumn(m.ManualSurplus, &surplus, m.ID, "manual_surplus")

	categories := make(map[string][]string)
	unmarshalColumn(m.TransactionCategories, &categories, m.ID, "transaction_categories")

	return &entity.Wallet{
		ID:                    m.ID,
		UserID:                m.UserID,
		Name:                  m.Name,
		BankDebitBalance:      m.BankDebitBalance,
		BankCreditBalance:     m.BankCreditBalance,
		ManualSurplus:         surplus,
		TransactionCategories: categories,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// WalletModelFromEntity creates a WalletModel from a domain Wallet entity.
func WalletModelFromEntity(wallet *entity.Wallet) *WalletModel {
	return &WalletModel{
		ID:                    wallet.ID,
		UserID:                wallet.UserID,
		Name:                  wallet.Name,
		BankDebitBalance:      wallet.BankDebitBalance,
		BankCreditBalance:     wallet.BankCreditBalance,
		ManualSurplus:         marshalColumn(wallet.ManualSurplus, wallet.ID, "manual_surplus"),
		TransactionCategories: marshalColumn(wallet.TransactionCategories, wallet.ID, "transaction_categories"),
		CreatedAt:             wallet.CreatedAt,
		UpdatedAt:             wallet.UpdatedAt,
	}
}
