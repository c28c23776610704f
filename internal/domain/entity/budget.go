package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetType distinguishes how a category's progress is tracked.
type BudgetType string

const (
	// BudgetTypeRecurrent expects one bill/payment per period (e.g. rent).
	BudgetTypeRecurrent BudgetType = "recurrent"
	// BudgetTypeVariable has no single expected payment; progress is the
	// plain sum of matching transactions.
	BudgetTypeVariable BudgetType = "variable"
)

// BudgetPayment records how a recurrent category's bill was settled for a period.
type BudgetPayment struct {
	Amount      decimal.Decimal
	PaymentType TransactionType
	CardID      *uuid.UUID
}

// BudgetConfig carries advisory metadata for a budget category. The engine
// only uses it to default the payment method; priority and flexibility are
// presentation hints.
type BudgetConfig struct {
	PaymentType TransactionType
	CardID      *uuid.UUID
	Priority    int // 1 (highest) to 5
	Flexible    bool
}

// Budget is a per-category monthly spending plan.
type Budget struct {
	ID       uuid.UUID
	WalletID uuid.UUID
	Category string
	Type     BudgetType

	// Total is the planned amount. Nil means unset. For recurrent categories
	// with subcategories the effective total is derived from the subcategory
	// budgets and the stored value is ignored.
	Total *decimal.Decimal

	// Subcategories maps subcategory name to its budgeted amount.
	Subcategories map[string]decimal.Decimal

	// Payments is the per-period ledger of settled bills, keyed by period key.
	// Only meaningful for recurrent categories.
	Payments map[string]BudgetPayment

	Config    BudgetConfig
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSubcategories reports whether the category has subcategory sub-budgets.
func (b *Budget) HasSubcategories() bool {
	return len(b.Subcategories) > 0
}

// EffectiveTotal returns the planned total for the category. Recurrent
// categories with subcategories derive it as the sum of subcategory budgets;
// everything else uses the stored value, with zero standing in for unset.
func (b *Budget) EffectiveTotal() decimal.Decimal {
	if b.Type == BudgetTypeRecurrent && b.HasSubcategories() {
		total := decimal.Zero
		for _, amount := range b.Subcategories {
			total = total.Add(amount)
		}
		return total
	}
	if b.Total == nil {
		return decimal.Zero
	}
	return *b.Total
}

// Clone returns a deep copy of the budget.
func (b *Budget) Clone() *Budget {
	clone := *b
	if b.Total != nil {
		total := *b.Total
		clone.Total = &total
	}
	if b.Subcategories != nil {
		clone.Subcategories = make(map[string]decimal.Decimal, len(b.Subcategories))
		for name, amount := range b.Subcategories {
			clone.Subcategories[name] = amount
		}
	}
	if b.Payments != nil {
		clone.Payments = make(map[string]BudgetPayment, len(b.Payments))
		for key, payment := range b.Payments {
			if payment.CardID != nil {
				id := *payment.CardID
				payment.CardID = &id
			}
			clone.Payments[key] = payment
		}
	}
	if b.Config.CardID != nil {
		id := *b.Config.CardID
		clone.Config.CardID = &id
	}
	return &clone
}
