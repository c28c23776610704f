package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

func TestComputeAvailableToSpend(t *testing.T) {
	tests := []struct {
		name                 string
		cashFlow             int64
		income               int64
		installments         int64
		budgets              int64
		wantBuffer           int64
		wantAvailableToSpend int64
	}{
		{
			name:     "projected surplus needs no buffer",
			cashFlow: 60000, income: 100000, installments: 20000, budgets: 30000,
			wantBuffer: 0, wantAvailableToSpend: 60000,
		},
		{
			name:     "projected shortfall reserves the gap",
			cashFlow: 60000, income: 50000, installments: 40000, budgets: 30000,
			wantBuffer: 20000, wantAvailableToSpend: 40000,
		},
		{
			name:     "shortfall larger than cash flow goes negative",
			cashFlow: 10000, income: 0, installments: 25000, budgets: 5000,
			wantBuffer: 30000, wantAvailableToSpend: -20000,
		},
		{
			name:     "break-even projection needs no buffer",
			cashFlow: 15000, income: 50000, installments: 50000, budgets: 0,
			wantBuffer: 0, wantAvailableToSpend: 15000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outlook := ComputeAvailableToSpend(
				amount(tt.cashFlow),
				amount(tt.income),
				amount(tt.installments),
				amount(tt.budgets),
			)

			if !outlook.BufferForNextMonth.Equal(amount(tt.wantBuffer)) {
				t.Errorf("expected buffer %d, got %s", tt.wantBuffer, outlook.BufferForNextMonth)
			}
			if !outlook.AvailableToSpend.Equal(amount(tt.wantAvailableToSpend)) {
				t.Errorf("expected available %d, got %s", tt.wantAvailableToSpend, outlook.AvailableToSpend)
			}
			if outlook.BufferForNextMonth.IsNegative() {
				t.Error("buffer must never be negative")
			}
		})
	}
}

func TestProjectNextMonth(t *testing.T) {
	openInstallment := installmentOf(1200000, 12, 3)
	paidOffInstallment := installmentOf(600000, 6, 6)

	settledInstallment := installmentOf(500000, 10, 4)
	settledInstallment.PaymentHistory["2026-02"] = entity.InstallmentPayment{
		Amount: amount(50000),
		Paid:   true,
	}

	snapshot := &entity.WalletSnapshot{
		FixedIncomes: []*entity.FixedIncome{
			entity.NewFixedIncome(uuid.New(), uuid.New(), "Sueldo", amount(800000)),
			entity.NewFixedIncome(uuid.New(), uuid.New(), "Arriendo pieza", amount(200000)),
		},
		Installments: []*entity.Installment{openInstallment, paidOffInstallment, settledInstallment},
		Budgets: []*entity.Budget{
			budgetOf("Supermercado", entity.BudgetTypeRecurrent, totalPtr(150000), nil),
			budgetOf("Servicios", entity.BudgetTypeRecurrent, nil, map[string]decimal.Decimal{
				"Luz":  amount(20000),
				"Agua": amount(15000),
			}),
			budgetOf("Entretenimiento", entity.BudgetTypeVariable, totalPtr(999999), nil),
			budgetOf(entity.CategoryIncome, entity.BudgetTypeRecurrent, totalPtr(123456), nil),
			budgetOf(entity.CategoryDebtPayment, entity.BudgetTypeRecurrent, totalPtr(654321), nil),
		},
	}

	projection := ProjectNextMonth(snapshot, entity.Period{Year: 2026, Month: time.February})

	if !projection.Income.Equal(amount(1000000)) {
		t.Errorf("expected projected income 1000000, got %s", projection.Income)
	}
	// Only the open installment still owes February: the second is paid off
	// and the third already has a February entry. 1200000 / 12 = 100000.
	if !projection.Installments.Equal(amount(100000)) {
		t.Errorf("expected projected installments 100000, got %s", projection.Installments)
	}
	// Recurrent budgets only, reserved categories and variable budgets
	// excluded: 150000 + (20000 + 15000) = 185000.
	if !projection.Budgets.Equal(amount(185000)) {
		t.Errorf("expected projected budgets 185000, got %s", projection.Budgets)
	}
}

func TestProjectNextMonth_EmptySnapshot(t *testing.T) {
	projection := ProjectNextMonth(&entity.WalletSnapshot{}, entity.Period{Year: 2026, Month: time.March})

	if !projection.Income.IsZero() || !projection.Installments.IsZero() || !projection.Budgets.IsZero() {
		t.Errorf("expected zero projection, got %+v", projection)
	}
}
