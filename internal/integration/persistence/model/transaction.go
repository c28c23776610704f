package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WalletID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(20);not null;index"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Subcategory *string         `gorm:"type:varchar(100)"`
	CardID      *uuid.UUID      `gorm:"type:uuid;index"`

	IsFixedIncomePayment bool       `gorm:"default:false"`
	FixedIncomeID        *uuid.UUID `gorm:"type:uuid;index"`

	IsRecurrentPayment bool   `gorm:"default:false"`
	PeriodKey          string `gorm:"type:varchar(7);index"`

	PaidInstallmentIDs        string           `gorm:"type:jsonb;not null;default:'[]'"`
	InstallmentPaymentPortion *decimal.Decimal `gorm:"type:decimal(15,2)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var paidInstallmentIDs []uuid.UUID
	unmarshalColumn(m.PaidInstallmentIDs, &paidInstallmentIDs, m.ID, "paid_installment_ids")

	return &entity.Transaction{
		ID:          m.ID,
		WalletID:    m.WalletID,
		Date:        m.Date,
		Description: m.Description,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		Category:    m.Category,
		Subcategory: m.Subcategory,
		CardID:      m.CardID,

		IsFixedIncomePayment: m.IsFixedIncomePayment,
		FixedIncomeID:        m.FixedIncomeID,

		IsRecurrentPayment: m.IsRecurrentPayment,
		PeriodKey:          m.PeriodKey,

		PaidInstallmentIDs:        paidInstallmentIDs,
		InstallmentPaymentPortion: m.InstallmentPaymentPortion,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TransactionModelFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionModelFromEntity(transaction *entity.Transaction) *TransactionModel {
	paidInstallmentIDs := "[]"
	if len(transaction.PaidInstallmentIDs) > 0 {
		paidInstallmentIDs = marshalColumn(transaction.PaidInstallmentIDs, transaction.ID, "paid_installment_ids")
	}

	return &TransactionModel{
		ID:          transaction.ID,
		WalletID:    transaction.WalletID,
		Date:        transaction.Date,
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		Category:    transaction.Category,
		Subcategory: transaction.Subcategory,
		CardID:      transaction.CardID,

		IsFixedIncomePayment: transaction.IsFixedIncomePayment,
		FixedIncomeID:        transaction.FixedIncomeID,

		IsRecurrentPayment: transaction.IsRecurrentPayment,
		PeriodKey:          transaction.PeriodKey,

		PaidInstallmentIDs:        paidInstallmentIDs,
		InstallmentPaymentPortion: transaction.InstallmentPaymentPortion,

		CreatedAt: transaction.CreatedAt,
		UpdatedAt: transaction.UpdatedAt,
	}
}
