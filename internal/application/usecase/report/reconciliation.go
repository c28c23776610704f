package report

import (
	"github.com/shopspring/decimal"
)

// ReconciliationStatus classifies one reconciliation side. The classification
// is deliberately ternary: a delta against a missing baseline is a different
// signal than a delta against a real one.
type ReconciliationStatus string

const (
	ReconciliationReconciled ReconciliationStatus = "reconciled"
	ReconciliationMismatch   ReconciliationStatus = "mismatch"
	ReconciliationNoBaseline ReconciliationStatus = "no_baseline"
)

// ReconciliationSide compares one derived balance against its bank baseline.
type ReconciliationSide struct {
	AppBalance  decimal.Decimal      `json:"app_balance"`
	BankBalance decimal.Decimal      `json:"bank_balance"`
	Delta       decimal.Decimal      `json:"delta"`
	Status      ReconciliationStatus `json:"status"`
}

// Reconciliation holds the debit- and credit-side comparison for a period.
type Reconciliation struct {
	Debit  ReconciliationSide `json:"debit"`
	Credit ReconciliationSide `json:"credit"`
}

// ComputeReconciliation compares the app-derived debit balance and credit
// availability against the bank-reported figures. The debit side's app
// balance is income + manual surplus - debit expenses for the period; the
// credit side's is the aggregate available-after-usage from card utilization.
func ComputeReconciliation(
	appDebitBalance, bankDebitBalance decimal.Decimal,
	appCreditAvailable, bankCreditBalance decimal.Decimal,
) Reconciliation {
	return Reconciliation{
		Debit:  reconcileSide(appDebitBalance, bankDebitBalance),
		Credit: reconcileSide(appCreditAvailable, bankCreditBalance),
	}
}

// reconcileSide classifies a single app-vs-bank comparison. An unset (zero)
// bank balance means there is nothing to reconcile against; below one
// currency unit of difference counts as reconciled.
func reconcileSide(app, bank decimal.Decimal) ReconciliationSide {
	side := ReconciliationSide{
		AppBalance:  app,
		BankBalance: bank,
		Delta:       app.Sub(bank),
	}

	switch {
	case bank.IsZero():
		side.Status = ReconciliationNoBaseline
	case side.Delta.Abs().LessThan(decimal.NewFromInt(1)):
		side.Status = ReconciliationReconciled
	default:
		side.Status = ReconciliationMismatch
	}

	return side
}
