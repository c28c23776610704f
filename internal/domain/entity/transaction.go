// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction and payment method of a transaction.
type TransactionType string

const (
	TransactionTypeIncome        TransactionType = "income"
	TransactionTypeExpenseDebit  TransactionType = "expense_debit"
	TransactionTypeExpenseCredit TransactionType = "expense_credit"
)

// Reserved category names. CategoryIncome collects income transactions;
// CategoryDebtPayment marks credit-card bill payments, which count as real
// cash outflows but are excluded from per-category budget progress.
const (
	CategoryIncome      = "Ingresos"
	CategoryDebtPayment = "[Pago de Deuda]"
)

// Transaction represents a single money movement inside a wallet.
// Amount is always a non-negative magnitude; direction is carried by Type.
type Transaction struct {
	ID          uuid.UUID
	WalletID    uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Subcategory *string
	CardID      *uuid.UUID // Required when Type is expense_credit

	// Linkage to the fixed income this transaction realizes, if any.
	IsFixedIncomePayment bool
	FixedIncomeID        *uuid.UUID

	// Linkage to the recurring budget line this transaction realizes, if any.
	IsRecurrentPayment bool
	PeriodKey          string

	// Set on card bill payments that also advanced installments.
	PaidInstallmentIDs        []uuid.UUID
	InstallmentPaymentPortion *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	id uuid.UUID,
	walletID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
	subcategory *string,
	cardID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          id,
		WalletID:    walletID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		Category:    category,
		Subcategory: subcategory,
		CardID:      cardID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsExpense reports whether the transaction is an outflow (debit or credit).
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpenseDebit || t.Type == TransactionTypeExpenseCredit
}

// IsCardBillPayment reports whether the transaction is a credit-card bill payment.
func (t *Transaction) IsCardBillPayment() bool {
	return t.Category == CategoryDebtPayment
}

// SubcategoryName returns the subcategory, or the empty string when unset.
func (t *Transaction) SubcategoryName() string {
	if t.Subcategory == nil {
		return ""
	}
	return *t.Subcategory
}

// Clone returns a deep copy of the transaction.
func (t *Transaction) Clone() *Transaction {
	clone := *t
	if t.Subcategory != nil {
		s := *t.Subcategory
		clone.Subcategory = &s
	}
	if t.CardID != nil {
		id := *t.CardID
		clone.CardID = &id
	}
	if t.FixedIncomeID != nil {
		id := *t.FixedIncomeID
		clone.FixedIncomeID = &id
	}
	if t.InstallmentPaymentPortion != nil {
		portion := *t.InstallmentPaymentPortion
		clone.InstallmentPaymentPortion = &portion
	}
	if t.PaidInstallmentIDs != nil {
		clone.PaidInstallmentIDs = make([]uuid.UUID, len(t.PaidInstallmentIDs))
		copy(clone.PaidInstallmentIDs, t.PaidInstallmentIDs)
	}
	return &clone
}
