package report

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

func dashboardFixture() *entity.WalletSnapshot {
	cardID := uuid.New()
	wallet := entity.NewWallet(uuid.New(), uuid.New(), "Casa", map[string][]string{
		"Supermercado": nil,
		"Servicios":    {"Luz", "Agua"},
	})
	wallet.ManualSurplus["2026-01"] = amount(5000)
	wallet.BankDebitBalance = amount(115000)
	wallet.BankCreditBalance = amount(430000)

	creditExpense := txn(entity.TransactionTypeExpenseCredit, 20000, date(2026, time.January, 12), "Supermercado")
	creditExpense.CardID = &cardID

	installment := installmentOf(1200000, 12, 3)
	installment.Type = entity.InstallmentTypeCreditCard
	installment.CardID = &cardID

	return &entity.WalletSnapshot{
		Wallet: wallet,
		Transactions: []*entity.Transaction{
			txn(entity.TransactionTypeIncome, 200000, date(2026, time.January, 1), entity.CategoryIncome),
			txn(entity.TransactionTypeExpenseDebit, 90000, date(2026, time.January, 10), "Supermercado"),
			creditExpense,
			txn(entity.TransactionTypeExpenseDebit, 40000, date(2025, time.December, 28), "Supermercado"),
		},
		Budgets: []*entity.Budget{
			budgetOf("Supermercado", entity.BudgetTypeRecurrent, totalPtr(120000), nil),
		},
		FixedIncomes: []*entity.FixedIncome{
			entity.NewFixedIncome(uuid.New(), wallet.ID, "Sueldo", amount(200000)),
		},
		Installments: []*entity.Installment{installment},
		CreditCards: []*entity.CreditCard{
			{ID: cardID, WalletID: wallet.ID, Name: "Visa", Limit: decimal.NewFromInt(1500000), BankAvailable: decimal.NewFromInt(430000)},
		},
	}
}

func TestBuildDashboard(t *testing.T) {
	snapshot := dashboardFixture()
	period := periodOf(2026, time.January)

	dashboard := BuildDashboard(snapshot, period)

	if dashboard.Period.Key != "2026-01" {
		t.Errorf("expected period key 2026-01, got %s", dashboard.Period.Key)
	}

	// Only January transactions count: income 200000, debit 90000, credit 20000.
	if !dashboard.Totals.Income.Equal(amount(200000)) {
		t.Errorf("expected income 200000, got %s", dashboard.Totals.Income)
	}
	if !dashboard.Totals.DebitExpense.Equal(amount(90000)) {
		t.Errorf("expected debit expense 90000, got %s", dashboard.Totals.DebitExpense)
	}
	if !dashboard.CashFlow.Equal(amount(90000)) {
		t.Errorf("expected cash flow 90000, got %s", dashboard.CashFlow)
	}
	if !dashboard.ManualSurplus.Equal(amount(5000)) {
		t.Errorf("expected manual surplus 5000, got %s", dashboard.ManualSurplus)
	}

	// Debit side: 200000 + 5000 - 90000 = 115000, matching the bank figure.
	if dashboard.Reconciliation.Debit.Status != ReconciliationReconciled {
		t.Errorf("expected debit reconciled, got %s (delta %s)",
			dashboard.Reconciliation.Debit.Status, dashboard.Reconciliation.Debit.Delta)
	}

	// Credit side: limit 1500000 - remaining 900000 - used 20000 = 580000
	// against a bank figure of 430000.
	if dashboard.Reconciliation.Credit.Status != ReconciliationMismatch {
		t.Errorf("expected credit mismatch, got %s", dashboard.Reconciliation.Credit.Status)
	}
	if !dashboard.Reconciliation.Credit.Delta.Equal(amount(150000)) {
		t.Errorf("expected credit delta 150000, got %s", dashboard.Reconciliation.Credit.Delta)
	}

	if len(dashboard.Installments) != 1 {
		t.Fatalf("expected 1 installment, got %d", len(dashboard.Installments))
	}
	if !dashboard.Installments[0].PendingThisPeriod {
		t.Error("expected the installment pending for the period")
	}
	if dashboard.PendingInstallmentsCount != 1 {
		t.Errorf("expected 1 pending installment, got %d", dashboard.PendingInstallmentsCount)
	}
	if !dashboard.PendingInstallmentsAmount.Equal(amount(100000)) {
		t.Errorf("expected pending amount 100000, got %s", dashboard.PendingInstallmentsAmount)
	}

	// Next month projects income 200000 against installment 100000 and
	// budget 120000: a 20000 shortfall reserved out of the cash flow.
	if !dashboard.Outlook.BufferForNextMonth.Equal(amount(20000)) {
		t.Errorf("expected buffer 20000, got %s", dashboard.Outlook.BufferForNextMonth)
	}
	if !dashboard.Outlook.AvailableToSpend.Equal(amount(70000)) {
		t.Errorf("expected available 70000, got %s", dashboard.Outlook.AvailableToSpend)
	}
}

func TestBuildDashboard_Deterministic(t *testing.T) {
	snapshot := dashboardFixture()
	period := periodOf(2026, time.January)

	first := BuildDashboard(snapshot, period)
	second := BuildDashboard(snapshot, period)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical output from repeated calls over the same snapshot")
	}
}

func TestBuildDashboard_DoesNotMutateSnapshot(t *testing.T) {
	snapshot := dashboardFixture()
	before := snapshot.Clone()

	BuildDashboard(snapshot, periodOf(2026, time.January))

	if !reflect.DeepEqual(before, snapshot) {
		t.Error("dashboard computation must not mutate the snapshot")
	}
}

func TestBuildDashboard_EmptyPeriod(t *testing.T) {
	snapshot := dashboardFixture()

	dashboard := BuildDashboard(snapshot, periodOf(2024, time.June))

	if !dashboard.Totals.Income.IsZero() || !dashboard.Totals.TotalExpense.IsZero() {
		t.Errorf("expected zero totals for an empty period, got %+v", dashboard.Totals)
	}
	if !dashboard.CashFlow.IsZero() {
		t.Errorf("expected zero cash flow, got %s", dashboard.CashFlow)
	}
}
