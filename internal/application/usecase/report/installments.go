package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// InstallmentState holds the derived amortization figures of one installment.
type InstallmentState struct {
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	IsPaidOff        bool            `json:"is_paid_off"`
}

// ComputeInstallmentState derives the monthly due and remaining balance.
// A zero installment count yields a zero monthly payment, never a division
// error; the remaining balance is floored at zero.
func ComputeInstallmentState(installment *entity.Installment) InstallmentState {
	state := InstallmentState{
		MonthlyPayment:   decimal.Zero,
		RemainingBalance: decimal.Zero,
		IsPaidOff:        installment.PaidInstallments >= installment.TotalInstallments,
	}

	if installment.TotalInstallments <= 0 {
		return state
	}

	state.MonthlyPayment = installment.TotalAmount.Div(decimal.NewFromInt(int64(installment.TotalInstallments)))

	remaining := installment.TotalInstallments - installment.PaidInstallments
	if remaining > 0 {
		state.RemainingBalance = state.MonthlyPayment.Mul(decimal.NewFromInt(int64(remaining)))
	}

	return state
}

// PendingThisPeriod returns the installments that still owe a payment for the
// period: not paid off and with no payment history entry for the period key.
func PendingThisPeriod(installments []*entity.Installment, periodKey string) []*entity.Installment {
	pending := make([]*entity.Installment, 0, len(installments))
	for _, installment := range installments {
		if ComputeInstallmentState(installment).IsPaidOff {
			continue
		}
		if _, settled := installment.PaymentHistory[periodKey]; settled {
			continue
		}
		pending = append(pending, installment)
	}
	return pending
}

// sortedKeys returns the map's keys in lexical order, for deterministic output.
func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
