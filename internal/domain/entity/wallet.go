package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultTransactionCategories returns the category layout seeded into new
// wallets. The reserved income and debt-payment categories always exist.
func DefaultTransactionCategories() map[string][]string {
	return map[string][]string{
		CategoryIncome:      nil,
		CategoryDebtPayment: nil,
		"Supermercado":      nil,
		"Transporte":        nil,
		"Salud":             nil,
		"Entretenimiento":   nil,
		"Servicios":         {"Luz", "Agua", "Gas", "Internet"},
		"Otros":             nil,
	}
}

// Wallet is the aggregate root of the household finance model. Every other
// entity is owned by exactly one wallet; there is no cross-wallet referencing.
type Wallet struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string

	// Externally reported balances, used only as reconciliation baselines.
	BankDebitBalance  decimal.Decimal
	BankCreditBalance decimal.Decimal

	// ManualSurplus is the user-entered carry-over from the prior period,
	// keyed by period key.
	ManualSurplus map[string]decimal.Decimal

	// TransactionCategories defines which categories exist and which
	// subcategory names each one allows.
	TransactionCategories map[string][]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWallet creates a new Wallet entity with the given category layout.
func NewWallet(id, userID uuid.UUID, name string, categories map[string][]string) *Wallet {
	now := time.Now().UTC()

	return &Wallet{
		ID:                    id,
		UserID:                userID,
		Name:                  name,
		ManualSurplus:         make(map[string]decimal.Decimal),
		TransactionCategories: categories,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// SurplusFor returns the manual surplus recorded for the period, or zero.
func (w *Wallet) SurplusFor(periodKey string) decimal.Decimal {
	if w.ManualSurplus == nil {
		return decimal.Zero
	}
	if surplus, ok := w.ManualSurplus[periodKey]; ok {
		return surplus
	}
	return decimal.Zero
}

// Clone returns a deep copy of the wallet.
func (w *Wallet) Clone() *Wallet {
	clone := *w
	if w.ManualSurplus != nil {
		clone.ManualSurplus = make(map[string]decimal.Decimal, len(w.ManualSurplus))
		for key, surplus := range w.ManualSurplus {
			clone.ManualSurplus[key] = surplus
		}
	}
	if w.TransactionCategories != nil {
		clone.TransactionCategories = make(map[string][]string, len(w.TransactionCategories))
		for category, subcategories := range w.TransactionCategories {
			subs := make([]string, len(subcategories))
			copy(subs, subcategories)
			clone.TransactionCategories[category] = subs
		}
	}
	return &clone
}

// WalletSnapshot bundles a wallet with all of its owned collections. The
// aggregation engine consumes snapshots read-only and never mutates them;
// write operations produce fresh snapshots instead.
type WalletSnapshot struct {
	Wallet       *Wallet
	Transactions []*Transaction
	Budgets      []*Budget
	FixedIncomes []*FixedIncome
	Installments []*Installment
	CreditCards  []*CreditCard
}

// FindCard returns the credit card with the given ID, if present.
func (s *WalletSnapshot) FindCard(id uuid.UUID) (*CreditCard, bool) {
	for _, card := range s.CreditCards {
		if card.ID == id {
			return card, true
		}
	}
	return nil, false
}

// FindInstallment returns the installment with the given ID, if present.
func (s *WalletSnapshot) FindInstallment(id uuid.UUID) (*Installment, bool) {
	for _, installment := range s.Installments {
		if installment.ID == id {
			return installment, true
		}
	}
	return nil, false
}

// FindFixedIncome returns the fixed income with the given ID, if present.
func (s *WalletSnapshot) FindFixedIncome(id uuid.UUID) (*FixedIncome, bool) {
	for _, income := range s.FixedIncomes {
		if income.ID == id {
			return income, true
		}
	}
	return nil, false
}

// FindBudget returns the budget for the given category, if present.
func (s *WalletSnapshot) FindBudget(category string) (*Budget, bool) {
	for _, budget := range s.Budgets {
		if budget.Category == category {
			return budget, true
		}
	}
	return nil, false
}

// FindTransaction returns the transaction with the given ID, if present.
func (s *WalletSnapshot) FindTransaction(id uuid.UUID) (*Transaction, bool) {
	for _, txn := range s.Transactions {
		if txn.ID == id {
			return txn, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the snapshot.
func (s *WalletSnapshot) Clone() *WalletSnapshot {
	clone := &WalletSnapshot{}
	if s.Wallet != nil {
		clone.Wallet = s.Wallet.Clone()
	}
	clone.Transactions = make([]*Transaction, len(s.Transactions))
	for i, txn := range s.Transactions {
		clone.Transactions[i] = txn.Clone()
	}
	clone.Budgets = make([]*Budget, len(s.Budgets))
	for i, budget := range s.Budgets {
		clone.Budgets[i] = budget.Clone()
	}
	clone.FixedIncomes = make([]*FixedIncome, len(s.FixedIncomes))
	for i, income := range s.FixedIncomes {
		clone.FixedIncomes[i] = income.Clone()
	}
	clone.Installments = make([]*Installment, len(s.Installments))
	for i, installment := range s.Installments {
		clone.Installments[i] = installment.Clone()
	}
	clone.CreditCards = make([]*CreditCard, len(s.CreditCards))
	for i, card := range s.CreditCards {
		clone.CreditCards[i] = card.Clone()
	}
	return clone
}
