package report

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeReconciliation_RoundTrip(t *testing.T) {
	// Identical app and bank figures reconcile with a zero delta, debit and
	// credit alike, for any balance.
	for _, value := range []int64{1, 500, 123456, 98765432} {
		balance := decimal.NewFromInt(value)
		result := ComputeReconciliation(balance, balance, balance, balance)

		if !result.Debit.Delta.IsZero() || !result.Credit.Delta.IsZero() {
			t.Fatalf("expected zero deltas for balance %d", value)
		}
		if result.Debit.Status != ReconciliationReconciled {
			t.Errorf("expected debit reconciled, got %s", result.Debit.Status)
		}
		if result.Credit.Status != ReconciliationReconciled {
			t.Errorf("expected credit reconciled, got %s", result.Credit.Status)
		}
	}
}

func TestComputeReconciliation_Classification(t *testing.T) {
	tests := []struct {
		name       string
		app        string
		bank       string
		wantStatus ReconciliationStatus
	}{
		{name: "exact match", app: "1000", bank: "1000", wantStatus: ReconciliationReconciled},
		{name: "sub-unit difference still reconciled", app: "1000.40", bank: "1000", wantStatus: ReconciliationReconciled},
		{name: "one unit off is a mismatch", app: "1001", bank: "1000", wantStatus: ReconciliationMismatch},
		{name: "large mismatch", app: "500", bank: "1000", wantStatus: ReconciliationMismatch},
		{name: "unset baseline", app: "1000", bank: "0", wantStatus: ReconciliationNoBaseline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := decimal.RequireFromString(tt.app)
			bank := decimal.RequireFromString(tt.bank)

			result := ComputeReconciliation(app, bank, decimal.Zero, decimal.Zero)

			if result.Debit.Status != tt.wantStatus {
				t.Errorf("expected %s, got %s", tt.wantStatus, result.Debit.Status)
			}
		})
	}
}

func TestComputeReconciliation_NoBaselineIsNotAMismatch(t *testing.T) {
	// A delta against an unset baseline must stay distinguishable from a
	// delta against a real one.
	result := ComputeReconciliation(
		decimal.NewFromInt(123456), decimal.Zero,
		decimal.NewFromInt(500000), decimal.NewFromInt(400000),
	)

	if result.Debit.Status != ReconciliationNoBaseline {
		t.Errorf("expected no_baseline on debit, got %s", result.Debit.Status)
	}
	if result.Credit.Status != ReconciliationMismatch {
		t.Errorf("expected mismatch on credit, got %s", result.Credit.Status)
	}
	if !result.Credit.Delta.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("expected credit delta 100000, got %s", result.Credit.Delta)
	}
}
