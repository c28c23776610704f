package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// fixedIncomePaymentRecord is the persisted shape of one period realization.
type fixedIncomePaymentRecord struct {
	Amount   decimal.Decimal `json:"amount"`
	Received bool            `json:"received"`
}

// FixedIncomeModel represents the fixed_incomes table in the database.
type FixedIncomeModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WalletID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	ExpectedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Payments       string          `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FixedIncomeModel.
func (FixedIncomeModel) TableName() string {
	return "fixed_incomes"
}

// ToEntity converts a FixedIncomeModel to a domain FixedIncome entity.
func (m *FixedIncomeModel) ToEntity() *entity.FixedIncome {
	records := make(map[string]fixedIncomePaymentRecord)
	unmarshalColumn(m.Payments, &records, m.ID, "payments")

	payments := make(map[string]entity.FixedIncomePayment, len(records))
	for key, record := range records {
		payments[key] = entity.FixedIncomePayment{
			Amount:   record.Amount,
			Received: record.Received,
		}
	}

	return &entity.FixedIncome{
		ID:             m.ID,
		WalletID:       m.WalletID,
		Name:           m.Name,
		ExpectedAmount: m.ExpectedAmount,
		Payments:       payments,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FixedIncomeModelFromEntity creates a FixedIncomeModel from a domain FixedIncome entity.
func FixedIncomeModelFromEntity(income *entity.FixedIncome) *FixedIncomeModel {
	records := make(map[string]fixedIncomePaymentRecord, len(income.Payments))
	for key, payment := range income.Payments {
		records[key] = fixedIncomePaymentRecord{
			Amount:   payment.Amount,
			Received: payment.Received,
		}
	}

	return &FixedIncomeModel{
		ID:             income.ID,
		WalletID:       income.WalletID,
		Name:           income.Name,
		ExpectedAmount: income.ExpectedAmount,
		Payments:       marshalColumn(records, income.ID, "payments"),
		CreatedAt:      income.CreatedAt,
		UpdatedAt:      income.UpdatedAt,
	}
}
