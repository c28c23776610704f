package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// budgetPaymentRecord is the persisted shape of one settled bill.
type budgetPaymentRecord struct {
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"payment_type"`
	CardID      *uuid.UUID      `json:"card_id,omitempty"`
}

// budgetConfigRecord is the persisted shape of the advisory config block.
type budgetConfigRecord struct {
	PaymentType string     `json:"payment_type,omitempty"`
	CardID      *uuid.UUID `json:"card_id,omitempty"`
	Priority    int        `json:"priority,omitempty"`
	Flexible    bool       `json:"flexible,omitempty"`
}

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	WalletID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_budgets_wallet_category,unique"`
	Category      string           `gorm:"type:varchar(100);not null;index:idx_budgets_wallet_category,unique"`
	Type          string           `gorm:"type:varchar(20);not null"`
	Total         *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Subcategories string           `gorm:"type:jsonb;not null;default:'{}'"`
	Payments      string           `gorm:"type:jsonb;not null;default:'{}'"`
	Config        string           `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	subcategories := make(map[string]decimal.Decimal)
	unmarshalColumn(m.Subcategories, &subcategories, m.ID, "subcategories")

	records := make(map[string]budgetPaymentRecord)
	unmarshalColumn(m.Payments, &records, m.ID, "payments")

	payments := make(map[string]entity.BudgetPayment, len(records))
	for key, record := range records {
		payments[key] = entity.BudgetPayment{
			Amount:      record.Amount,
			PaymentType: entity.TransactionType(record.PaymentType),
			CardID:      record.CardID,
		}
	}

	var config budgetConfigRecord
	unmarshalColumn(m.Config, &config, m.ID, "config")

	return &entity.Budget{
		ID:            m.ID,
		WalletID:      m.WalletID,
		Category:      m.Category,
		Type:          entity.BudgetType(m.Type),
		Total:         m.Total,
		Subcategories: subcategories,
		Payments:      payments,
		Config: entity.BudgetConfig{
			PaymentType: entity.TransactionType(config.PaymentType),
			CardID:      config.CardID,
			Priority:    config.Priority,
			Flexible:    config.Flexible,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetModelFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetModelFromEntity(budget *entity.Budget) *BudgetModel {
	records := make(map[string]budgetPaymentRecord, len(budget.Payments))
	for key, payment := range budget.Payments {
		records[key] = budgetPaymentRecord{
			Amount:      payment.Amount,
			PaymentType: string(payment.PaymentType),
			CardID:      payment.CardID,
		}
	}

	config := budgetConfigRecord{
		PaymentType: string(budget.Config.PaymentType),
		CardID:      budget.Config.CardID,
		Priority:    budget.Config.Priority,
		Flexible:    budget.Config.Flexible,
	}

	return &BudgetModel{
		ID:            budget.ID,
		WalletID:      budget.WalletID,
		Category:      budget.Category,
		Type:          string(budget.Type),
		Total:         budget.Total,
		Subcategories: marshalColumn(budget.Subcategories, budget.ID, "subcategories"),
		Payments:      marshalColumn(records, budget.ID, "payments"),
		Config:        marshalColumn(config, budget.ID, "config"),
		CreatedAt:     budget.CreatedAt,
		UpdatedAt:     budget.UpdatedAt,
	}
}
