package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FixedIncomePayment records the realization of a fixed income for one period.
type FixedIncomePayment struct {
	Amount   decimal.Decimal
	Received bool
}

// FixedIncome is an expected recurring income line, e.g. a salary.
// Marking a period as received materializes a synthetic income transaction
// tagged IsFixedIncomePayment; clearing the flag removes it again.
type FixedIncome struct {
	ID             uuid.UUID
	WalletID       uuid.UUID
	Name           string
	ExpectedAmount decimal.Decimal
	Payments       map[string]FixedIncomePayment
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewFixedIncome creates a new FixedIncome entity.
func NewFixedIncome(id, walletID uuid.UUID, name string, expectedAmount decimal.Decimal) *FixedIncome {
	now := time.Now().UTC()

	return &FixedIncome{
		ID:             id,
		WalletID:       walletID,
		Name:           name,
		ExpectedAmount: expectedAmount,
		Payments:       make(map[string]FixedIncomePayment),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Clone returns a deep copy of the fixed income.
func (f *FixedIncome) Clone() *FixedIncome {
	clone := *f
	if f.Payments != nil {
		clone.Payments = make(map[string]FixedIncomePayment, len(f.Payments))
		for key, payment := range f.Payments {
			clone.Payments[key] = payment
		}
	}
	return &clone
}
