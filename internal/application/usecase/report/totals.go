// Package report implements the period-scoped aggregation engine. Every
// function in this package is a pure computation over an immutable wallet
// snapshot: inputs are never mutated and results are fresh values, so callers
// can diff before/after and repeated calls on the same snapshot are identical.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// Totals holds the monthly income/expense split for a period.
type Totals struct {
	Income        decimal.Decimal `json:"income"`
	DebitExpense  decimal.Decimal `json:"debit_expense"`
	CreditExpense decimal.Decimal `json:"credit_expense"`
	TotalExpense  decimal.Decimal `json:"total_expense"`
}

// CashFlow returns income minus total expenses.
func (t Totals) CashFlow() decimal.Decimal {
	return t.Income.Sub(t.TotalExpense)
}

// SelectPeriod returns the transactions whose date falls inside the period.
// Order is preserved from the input; the input slice is not modified.
func SelectPeriod(transactions []*entity.Transaction, period entity.Period) []*entity.Transaction {
	selected := make([]*entity.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if period.Contains(txn.Date) {
			selected = append(selected, txn)
		}
	}
	return selected
}

// ComputeTotals sums the period's transactions by type. Card bill payments
// (category "[Pago de Deuda]") are included: they are real cash outflows,
// even though budget progress ignores them.
func ComputeTotals(periodTransactions []*entity.Transaction) Totals {
	totals := Totals{
		Income:        decimal.Zero,
		DebitExpense:  decimal.Zero,
		CreditExpense: decimal.Zero,
	}

	for _, txn := range periodTransactions {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			totals.Income = totals.Income.Add(txn.Amount)
		case entity.TransactionTypeExpenseDebit:
			totals.DebitExpense = totals.DebitExpense.Add(txn.Amount)
		case entity.TransactionTypeExpenseCredit:
			totals.CreditExpense = totals.CreditExpense.Add(txn.Amount)
		}
	}

	totals.TotalExpense = totals.DebitExpense.Add(totals.CreditExpense)
	return totals
}
