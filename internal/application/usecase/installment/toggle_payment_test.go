// Package installment contains installment-related use cases.
package installment

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

func loanOf(total, paid int) *entity.Installment {
	loan := entity.NewInstallment(
		uuid.New(), uuid.New(), "Refrigerador",
		decimal.NewFromInt(600000), total,
		entity.InstallmentTypeConsumerLoan, nil,
	)
	loan.PaidInstallments = paid
	return loan
}

func TestPlanTogglePayment_PayAndUnpay(t *testing.T) {
	loan := loanOf(6, 2)

	paid, err := PlanTogglePayment(loan, "2026-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid.PaidInstallments != 3 {
		t.Errorf("expected counter 3 after paying, got %d", paid.PaidInstallments)
	}
	entry, ok := paid.PaymentHistory["2026-01"]
	if !ok || !entry.Paid {
		t.Fatal("expected a paid history entry")
	}
	if !entry.Amount.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("expected recorded monthly amount 100000, got %s", entry.Amount)
	}
	if entry.TransactionID != nil {
		t.Error("manual toggles must not lock the entry")
	}
	if loan.PaidInstallments != 2 {
		t.Error("planner must not mutate its input")
	}

	unpaid, err := PlanTogglePayment(paid, "2026-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unpaid.PaidInstallments != 2 {
		t.Errorf("expected counter back to 2, got %d", unpaid.PaidInstallments)
	}
	if _, ok := unpaid.PaymentHistory["2026-01"]; ok {
		t.Error("expected the history entry removed")
	}
}

func TestPlanTogglePayment_LockedEntryRefused(t *testing.T) {
	loan := loanOf(6, 3)
	txnID := uuid.New()
	loan.PaymentHistory["2026-01"] = entity.InstallmentPayment{
		Amount:        decimal.NewFromInt(100000),
		Paid:          true,
		TransactionID: &txnID,
	}

	_, err := PlanTogglePayment(loan, "2026-01")

	if !errors.Is(err, domainerror.ErrPaymentLocked) {
		t.Fatalf("expected ErrPaymentLocked, got %v", err)
	}

	var instErr *domainerror.InstallmentError
	if !errors.As(err, &instErr) || instErr.Code != domainerror.ErrCodePaymentLocked {
		t.Error("expected the coded locked-payment error")
	}
}

func TestPlanTogglePayment_CounterBounds(t *testing.T) {
	t.Run("paying past the total refused", func(t *testing.T) {
		loan := loanOf(6, 6)

		_, err := PlanTogglePayment(loan, "2026-07")
		if !errors.Is(err, domainerror.ErrAllInstallmentsPaid) {
			t.Fatalf("expected ErrAllInstallmentsPaid, got %v", err)
		}
	})

	t.Run("unpaying below zero refused", func(t *testing.T) {
		loan := loanOf(6, 0)
		loan.PaymentHistory["2026-01"] = entity.InstallmentPayment{
			Amount: decimal.NewFromInt(100000),
			Paid:   true,
		}

		_, err := PlanTogglePayment(loan, "2026-01")
		if !errors.Is(err, domainerror.ErrNoPaidInstallments) {
			t.Fatalf("expected ErrNoPaidInstallments, got %v", err)
		}
	})
}

func TestPlanTogglePayment_DistinctPeriodsAccumulate(t *testing.T) {
	loan := loanOf(3, 0)

	one, err := PlanTogglePayment(loan, "2026-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	two, err := PlanTogglePayment(one, "2026-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	three, err := PlanTogglePayment(two, "2026-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if three.PaidInstallments != 3 {
		t.Errorf("expected counter 3, got %d", three.PaidInstallments)
	}
	if len(three.PaymentHistory) != 3 {
		t.Errorf("expected 3 history entries, got %d", len(three.PaymentHistory))
	}

	_, err = PlanTogglePayment(three, "2026-04")
	if !errors.Is(err, domainerror.ErrAllInstallmentsPaid) {
		t.Fatalf("expected ErrAllInstallmentsPaid after full amortization, got %v", err)
	}
}
