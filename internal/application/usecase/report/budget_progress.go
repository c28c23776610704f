package report

import (
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// Severity classifies budget consumption for display.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

var (
	hundred           = decimal.NewFromInt(100)
	warningThreshold  = decimal.NewFromInt(75)
	criticalThreshold = decimal.NewFromInt(90)
)

// SubcategoryProgress is the progress of one subcategory sub-budget.
type SubcategoryProgress struct {
	Name       string          `json:"name"`
	Total      decimal.Decimal `json:"total"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"` // clamped to [0,100]
	Severity   Severity        `json:"severity"`
	Pending    bool            `json:"pending"`
}

// BudgetLineResult is the progress of one budget category for a period.
type BudgetLineResult struct {
	Category string            `json:"category"`
	Type     entity.BudgetType `json:"type"`

	Total     decimal.Decimal `json:"total"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`

	// RawPercentage is spent/total*100 without clamping; it drives severity.
	// Percentage is the display value clamped to [0,100].
	RawPercentage decimal.Decimal `json:"raw_percentage"`
	Percentage    decimal.Decimal `json:"percentage"`
	Severity      Severity        `json:"severity"`

	// Pending reports an unsettled recurrent obligation for the period. For
	// categories with subcategories it is true when any subcategory line is
	// pending; the pending summary counts only the subcategory lines then.
	Pending bool `json:"pending"`

	Subcategories []SubcategoryProgress `json:"subcategories,omitempty"`
}

// PendingRecurringSummary aggregates the unsettled recurrent obligations of a
// period. A category with subcategory budgets contributes its subcategory
// lines only, never its (derived) category total on top, so nothing is
// counted twice.
type PendingRecurringSummary struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// ComputeBudgetProgress derives per-category budget progress from the period's
// transactions. The reserved income and debt-payment categories are excluded.
func ComputeBudgetProgress(
	snapshot *entity.WalletSnapshot,
	periodTransactions []*entity.Transaction,
	periodKey string,
) ([]BudgetLineResult, PendingRecurringSummary) {
	results := make([]BudgetLineResult, 0, len(snapshot.Budgets))
	pending := PendingRecurringSummary{Amount: decimal.Zero}

	for _, budget := range snapshot.Budgets {
		if budget.Category == entity.CategoryIncome || budget.Category == entity.CategoryDebtPayment {
			continue
		}

		line := computeLine(budget, periodTransactions, periodKey)

		if budget.Type == entity.BudgetTypeRecurrent {
			if budget.HasSubcategories() {
				for _, sub := range line.Subcategories {
					if sub.Pending {
						pending.Count++
						pending.Amount = pending.Amount.Add(sub.Total)
					}
				}
			} else if line.Pending {
				pending.Count++
				pending.Amount = pending.Amount.Add(line.Total)
			}
		}

		results = append(results, line)
	}

	return results, pending
}

func computeLine(budget *entity.Budget, periodTransactions []*entity.Transaction, periodKey string) BudgetLineResult {
	line := BudgetLineResult{
		Category: budget.Category,
		Type:     budget.Type,
		Total:    budget.EffectiveTotal(),
		Spent:    decimal.Zero,
	}

	spentBySub := make(map[string]decimal.Decimal)
	for _, txn := range periodTransactions {
		if txn.Category != budget.Category || !txn.IsExpense() {
			continue
		}
		line.Spent = line.Spent.Add(txn.Amount)
		sub := txn.SubcategoryName()
		spentBySub[sub] = spentBySub[sub].Add(txn.Amount)
	}

	line.Remaining = line.Total.Sub(line.Spent)
	line.RawPercentage, line.Percentage = percentages(line.Spent, line.Total)
	line.Severity = classifySeverity(line.RawPercentage)

	if budget.HasSubcategories() {
		line.Subcategories = make([]SubcategoryProgress, 0, len(budget.Subcategories))
		for _, name := range sortedKeys(budget.Subcategories) {
			total := budget.Subcategories[name]
			spent := spentBySub[name]
			raw, clamped := percentages(spent, total)
			sub := SubcategoryProgress{
				Name:       name,
				Total:      total,
				Spent:      spent,
				Remaining:  total.Sub(spent),
				Percentage: clamped,
				Severity:   classifySeverity(raw),
			}
			if budget.Type == entity.BudgetTypeRecurrent {
				sub.Pending = total.IsPositive() &&
					!hasRecurrentPayment(periodTransactions, budget.Category, &name)
			}
			line.Subcategories = append(line.Subcategories, sub)
			if sub.Pending {
				line.Pending = true
			}
		}
	} else if budget.Type == entity.BudgetTypeRecurrent {
		line.Pending = line.Total.IsPositive() &&
			!hasRecurrentPayment(periodTransactions, budget.Category, nil)
	}

	return line
}

// hasRecurrentPayment reports whether the period contains a transaction that
// realizes the recurrent line for the category (and subcategory, if given).
func hasRecurrentPayment(periodTransactions []*entity.Transaction, category string, subcategory *string) bool {
	for _, txn := range periodTransactions {
		if !txn.IsRecurrentPayment || txn.Category != category {
			continue
		}
		if subcategory == nil || txn.SubcategoryName() == *subcategory {
			return true
		}
	}
	return false
}

// percentages returns the raw and the [0,100]-clamped spent/total percentage.
// A zero or unset total yields zero, never a division error.
func percentages(spent, total decimal.Decimal) (raw, clamped decimal.Decimal) {
	if !total.IsPositive() {
		return decimal.Zero, decimal.Zero
	}
	raw = spent.Mul(hundred).Div(total)
	clamped = raw
	if clamped.LessThan(decimal.Zero) {
		clamped = decimal.Zero
	}
	if clamped.GreaterThan(hundred) {
		clamped = hundred
	}
	return raw, clamped
}

// CriticalCrossing reports whether the category's budget line moved over the
// critical threshold between two transaction sets of the same period, and
// returns the line as computed after. Used to fire threshold alerts exactly
// once, on the write that crossed the line.
func CriticalCrossing(
	snapshot *entity.WalletSnapshot,
	before, after []*entity.Transaction,
	periodKey string,
	category string,
) (BudgetLineResult, bool) {
	budget, ok := snapshot.FindBudget(category)
	if !ok {
		return BudgetLineResult{}, false
	}

	previous := computeLine(budget, before, periodKey)
	current := computeLine(budget, after, periodKey)

	crossed := previous.Severity != SeverityCritical && current.Severity == SeverityCritical
	return current, crossed
}

func classifySeverity(rawPercentage decimal.Decimal) Severity {
	if rawPercentage.GreaterThan(criticalThreshold) {
		return SeverityCritical
	}
	if rawPercentage.GreaterThan(warningThreshold) {
		return SeverityWarning
	}
	return SeverityNormal
}
