package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditCard represents one credit card owned by a wallet. BankAvailable is
// the available credit reported by the bank; it is only used as the
// reconciliation baseline, never in the derived figures themselves.
type CreditCard struct {
	ID            uuid.UUID
	WalletID      uuid.UUID
	Name          string
	Limit         decimal.Decimal
	BankAvailable decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCreditCard creates a new CreditCard entity.
func NewCreditCard(id, walletID uuid.UUID, name string, limit decimal.Decimal) *CreditCard {
	now := time.Now().UTC()

	return &CreditCard{
		ID:        id,
		WalletID:  walletID,
		Name:      name,
		Limit:     limit,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a copy of the credit card.
func (c *CreditCard) Clone() *CreditCard {
	clone := *c
	return &clone
}
