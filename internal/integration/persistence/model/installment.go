package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// installmentPaymentRecord is the persisted shape of one settled due.
type installmentPaymentRecord struct {
	Amount        decimal.Decimal `json:"amount"`
	Paid          bool            `json:"paid"`
	TransactionID *uuid.UUID      `json:"transaction_id,omitempty"`
}

// InstallmentModel represents the installments table in the database.
type InstallmentModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WalletID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description       string          `gorm:"type:varchar(255);not null"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalInstallments int             `gorm:"not null"`
	PaidInstallments  int             `gorm:"not null;default:0"`
	Type              string          `gorm:"type:varchar(20);not null"`
	CardID            *uuid.UUID      `gorm:"type:uuid;index"`
	PaymentHistory    string          `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InstallmentModel.
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToEntity converts an InstallmentModel to a domain Installment entity.
func (m *InstallmentModel) ToEntity() *entity.Installment {
	records := make(map[string]installmentPaymentRecord)
	unmarshalColumn(m.PaymentHistory, &records, m.ID, "payment_history")

	history := make(map[string]entity.InstallmentPayment, len(records))
	for key, record := range records {
		history[key] = entity.InstallmentPayment{
			Amount:        record.Amount,
			Paid:          record.Paid,
			TransactionID: record.TransactionID,
		}
	}

	return &entity.Installment{
		ID:                m.ID,
		WalletID:          m.WalletID,
		Description:       m.Description,
		TotalAmount:       m.TotalAmount,
		TotalInstallments: m.TotalInstallments,
		PaidInstallments:  m.PaidInstallments,
		Type:              entity.InstallmentType(m.Type),
		CardID:            m.CardID,
		PaymentHistory:    history,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// InstallmentModelFromEntity creates an InstallmentModel from a domain Installment entity.
func InstallmentModelFromEntity(installment *entity.Installment) *InstallmentModel {
	records := make(map[string]installmentPaymentRecord, len(installment.PaymentHistory))
	for key, payment := range installment.PaymentHistory {
		records[key] = installmentPaymentRecord{
			Amount:        payment.Amount,
			Paid:          payment.Paid,
			TransactionID: payment.TransactionID,
		}
	}

	return &InstallmentModel{
		ID:                installment.ID,
		WalletID:          installment.WalletID,
		Description:       installment.Description,
		TotalAmount:       installment.TotalAmount,
		TotalInstallments: installment.TotalInstallments,
		PaidInstallments:  installment.PaidInstallments,
		Type:              string(installment.Type),
		CardID:            installment.CardID,
		PaymentHistory:    marshalColumn(records, installment.ID, "payment_history"),
		CreatedAt:         installment.CreatedAt,
		UpdatedAt:         installment.UpdatedAt,
	}
}
