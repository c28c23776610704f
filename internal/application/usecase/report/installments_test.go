package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

func installmentOf(totalAmount int64, total, paid int) *entity.Installment {
	return &entity.Installment{
		ID:                uuid.New(),
		TotalAmount:       decimal.NewFromInt(totalAmount),
		TotalInstallments: total,
		PaidInstallments:  paid,
		Type:              entity.InstallmentTypeConsumerLoan,
		PaymentHistory:    make(map[string]entity.InstallmentPayment),
	}
}

func TestComputeInstallmentState(t *testing.T) {
	tests := []struct {
		name              string
		installment       *entity.Installment
		wantMonthly       int64
		wantRemaining     int64
		wantPaidOff       bool
	}{
		{
			name:          "three of twelve paid",
			installment:   installmentOf(1200000, 12, 3),
			wantMonthly:   100000,
			wantRemaining: 900000,
			wantPaidOff:   false,
		},
		{
			name:          "fully paid",
			installment:   installmentOf(1200000, 12, 12),
			wantMonthly:   100000,
			wantRemaining: 0,
			wantPaidOff:   true,
		},
		{
			name:          "nothing paid",
			installment:   installmentOf(600000, 6, 0),
			wantMonthly:   100000,
			wantRemaining: 600000,
			wantPaidOff:   false,
		},
		{
			name:          "zero count yields zero monthly payment",
			installment:   installmentOf(500000, 0, 0),
			wantMonthly:   0,
			wantRemaining: 0,
			wantPaidOff:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := ComputeInstallmentState(tt.installment)

			if !state.MonthlyPayment.Equal(decimal.NewFromInt(tt.wantMonthly)) {
				t.Errorf("expected monthly payment %d, got %s", tt.wantMonthly, state.MonthlyPayment)
			}
			if !state.RemainingBalance.Equal(decimal.NewFromInt(tt.wantRemaining)) {
				t.Errorf("expected remaining balance %d, got %s", tt.wantRemaining, state.RemainingBalance)
			}
			if state.IsPaidOff != tt.wantPaidOff {
				t.Errorf("expected paid off %v, got %v", tt.wantPaidOff, state.IsPaidOff)
			}
		})
	}
}

func TestComputeInstallmentState_RemainingNeverNegative(t *testing.T) {
	// Overshooting paid counts is invalid data; the derived balance still
	// floors at zero instead of going negative.
	over := installmentOf(1200000, 12, 15)

	state := ComputeInstallmentState(over)

	if state.RemainingBalance.IsNegative() {
		t.Errorf("remaining balance must not be negative, got %s", state.RemainingBalance)
	}
	if !state.IsPaidOff {
		t.Error("expected installment to read as paid off")
	}
}

func TestPendingThisPeriod(t *testing.T) {
	open := installmentOf(1200000, 12, 3)
	settled := installmentOf(600000, 6, 2)
	settled.PaymentHistory["2024-03"] = entity.InstallmentPayment{
		Amount: decimal.NewFromInt(100000),
		Paid:   true,
	}
	finished := installmentOf(300000, 3, 3)

	pending := PendingThisPeriod([]*entity.Installment{open, settled, finished}, "2024-03")

	if len(pending) != 1 {
		t.Fatalf("expected 1 pending installment, got %d", len(pending))
	}
	if pending[0].ID != open.ID {
		t.Error("expected the open installment to be pending")
	}
}

func TestInstallmentInvariantAcrossStates(t *testing.T) {
	for paid := 0; paid <= 12; paid++ {
		state := ComputeInstallmentState(installmentOf(1200000, 12, paid))
		if state.RemainingBalance.IsNegative() {
			t.Fatalf("negative remaining balance at paid=%d", paid)
		}
	}
}
