package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// CategoryComparison is one row of the month-over-month category delta view.
// PctChange is nil when the previous period had no spending in the category:
// the change is undefined, not 0% and not infinite.
type CategoryComparison struct {
	Category  string           `json:"category"`
	Current   decimal.Decimal  `json:"current"`
	Previous  decimal.Decimal  `json:"previous"`
	Delta     decimal.Decimal  `json:"delta"`
	PctChange *decimal.Decimal `json:"pct_change"`
}

// ExpensesByCategory sums a period's expense transactions per category.
// Income and card bill payments are excluded: the comparison is about
// category spending, and bill payments are already represented by the credit
// transactions they settle.
func ExpensesByCategory(periodTransactions []*entity.Transaction) map[string]decimal.Decimal {
	byCategory := make(map[string]decimal.Decimal)
	for _, txn := range periodTransactions {
		if !txn.IsExpense() || txn.IsCardBillPayment() {
			continue
		}
		byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount)
	}
	return byCategory
}

// CompareToPreviousMonth diffs two per-category expense maps. The result
// covers the union of categories and is ordered by category name.
func CompareToPreviousMonth(current, previous map[string]decimal.Decimal) []CategoryComparison {
	categories := make(map[string]struct{}, len(current)+len(previous))
	for category := range current {
		categories[category] = struct{}{}
	}
	for category := range previous {
		categories[category] = struct{}{}
	}

	names := make([]string, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Strings(names)

	rows := make([]CategoryComparison, 0, len(names))
	for _, category := range names {
		currentAmount := current[category]
		previousAmount := previous[category]

		row := CategoryComparison{
			Category: category,
			Current:  currentAmount,
			Previous: previousAmount,
			Delta:    currentAmount.Sub(previousAmount),
		}

		if !previousAmount.IsZero() {
			pct := row.Delta.Mul(hundred).Div(previousAmount)
			row.PctChange = &pct
		}

		rows = append(rows, row)
	}

	return rows
}
