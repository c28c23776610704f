package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InstallmentType distinguishes card purchases from consumer loans.
type InstallmentType string

const (
	InstallmentTypeCreditCard   InstallmentType = "credit_card"
	InstallmentTypeConsumerLoan InstallmentType = "consumer_loan"
)

// InstallmentPayment records the settlement of one period's due.
// A non-nil TransactionID means the payment was made through a tracked
// transaction and is locked: it can only be reversed by deleting that
// transaction, never by a manual un-toggle.
type InstallmentPayment struct {
	Amount        decimal.Decimal
	Paid          bool
	TransactionID *uuid.UUID
}

// Installment is a fixed-count amortizing obligation: a purchase in N parts
// or a consumer loan. Invariant: 0 <= PaidInstallments <= TotalInstallments.
type Installment struct {
	ID                uuid.UUID
	WalletID          uuid.UUID
	Description       string
	TotalAmount       decimal.Decimal
	TotalInstallments int
	PaidInstallments  int
	Type              InstallmentType
	CardID            *uuid.UUID // Required when Type is credit_card
	PaymentHistory    map[string]InstallmentPayment
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewInstallment creates a new Installment entity.
func NewInstallment(
	id uuid.UUID,
	walletID uuid.UUID,
	description string,
	totalAmount decimal.Decimal,
	totalInstallments int,
	installmentType InstallmentType,
	cardID *uuid.UUID,
) *Installment {
	now := time.Now().UTC()

	return &Installment{
		ID:                id,
		WalletID:          walletID,
		Description:       description,
		TotalAmount:       totalAmount,
		TotalInstallments: totalInstallments,
		Type:              installmentType,
		CardID:            cardID,
		PaymentHistory:    make(map[string]InstallmentPayment),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Clone returns a deep copy of the installment.
func (i *Installment) Clone() *Installment {
	clone := *i
	if i.CardID != nil {
		id := *i.CardID
		clone.CardID = &id
	}
	if i.PaymentHistory != nil {
		clone.PaymentHistory = make(map[string]InstallmentPayment, len(i.PaymentHistory))
		for key, payment := range i.PaymentHistory {
			if payment.TransactionID != nil {
				id := *payment.TransactionID
				payment.TransactionID = &id
			}
			clone.PaymentHistory[key] = payment
		}
	}
	return &clone
}
