package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

func budgetOf(category string, budgetType entity.BudgetType, total *decimal.Decimal, subcategories map[string]decimal.Decimal) *entity.Budget {
	return &entity.Budget{
		ID:            uuid.New(),
		Category:      category,
		Type:          budgetType,
		Total:         total,
		Subcategories: subcategories,
	}
}

func totalPtr(value int64) *decimal.Decimal {
	total := decimal.NewFromInt(value)
	return &total
}

func snapshotWithBudgets(budgets ...*entity.Budget) *entity.WalletSnapshot {
	return &entity.WalletSnapshot{
		Wallet:  &entity.Wallet{ID: uuid.New()},
		Budgets: budgets,
	}
}

func TestEffectiveTotal_DerivedFromSubcategories(t *testing.T) {
	budget := budgetOf("Servicios", entity.BudgetTypeRecurrent, nil, map[string]decimal.Decimal{
		"Luz":  decimal.NewFromInt(50000),
		"Agua": decimal.NewFromInt(30000),
	})

	if !budget.EffectiveTotal().Equal(decimal.NewFromInt(80000)) {
		t.Errorf("expected derived total 80000, got %s", budget.EffectiveTotal())
	}
}

func TestEffectiveTotal_SubcategoriesOverrideStoredTotal(t *testing.T) {
	budget := budgetOf("Servicios", entity.BudgetTypeRecurrent, totalPtr(999999), map[string]decimal.Decimal{
		"Luz":  decimal.NewFromInt(50000),
		"Agua": decimal.NewFromInt(30000),
	})

	if !budget.EffectiveTotal().Equal(decimal.NewFromInt(80000)) {
		t.Errorf("stored total should be ignored, got %s", budget.EffectiveTotal())
	}
}

func TestComputeBudgetProgress_SpentAndSeverity(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		spent    int64
		severity Severity
	}{
		{name: "normal usage", total: 1000, spent: 500, severity: SeverityNormal},
		{name: "warning above 75", total: 1000, spent: 800, severity: SeverityWarning},
		{name: "critical above 90", total: 1000, spent: 950, severity: SeverityCritical},
		{name: "overrun stays critical", total: 1000, spent: 1500, severity: SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := snapshotWithBudgets(
				budgetOf("Compras", entity.BudgetTypeVariable, totalPtr(tt.total), nil),
			)
			transactions := []*entity.Transaction{
				txn(entity.TransactionTypeExpenseDebit, tt.spent, date(2024, time.March, 10), "Compras"),
			}

			lines, _ := ComputeBudgetProgress(snapshot, transactions, "2024-03")
			if len(lines) != 1 {
				t.Fatalf("expected 1 line, got %d", len(lines))
			}

			line := lines[0]
			if !line.Spent.Equal(decimal.NewFromInt(tt.spent)) {
				t.Errorf("expected spent %d, got %s", tt.spent, line.Spent)
			}
			if line.Severity != tt.severity {
				t.Errorf("expected severity %s, got %s", tt.severity, line.Severity)
			}
			if line.Percentage.GreaterThan(decimal.NewFromInt(100)) {
				t.Errorf("display percentage must be clamped, got %s", line.Percentage)
			}
		})
	}
}

func TestComputeBudgetProgress_ZeroTotalYieldsZeroPercentage(t *testing.T) {
	snapshot := snapshotWithBudgets(
		budgetOf("Compras", entity.BudgetTypeVariable, nil, nil),
	)
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeExpenseDebit, 100, date(2024, time.March, 1), "Compras"),
	}

	lines, _ := ComputeBudgetProgress(snapshot, transactions, "2024-03")

	if !lines[0].Percentage.IsZero() || !lines[0].RawPercentage.IsZero() {
		t.Errorf("unset total must yield zero percentage, got %s", lines[0].Percentage)
	}
}

func TestComputeBudgetProgress_ReservedCategoriesExcluded(t *testing.T) {
	snapshot := snapshotWithBudgets(
		budgetOf(entity.CategoryIncome, entity.BudgetTypeVariable, totalPtr(100), nil),
		budgetOf(entity.CategoryDebtPayment, entity.BudgetTypeVariable, totalPtr(100), nil),
		budgetOf("Compras", entity.BudgetTypeVariable, totalPtr(100), nil),
	)

	lines, _ := ComputeBudgetProgress(snapshot, nil, "2024-03")

	if len(lines) != 1 || lines[0].Category != "Compras" {
		t.Fatalf("expected only the Compras line, got %d lines", len(lines))
	}
}

func TestComputeBudgetProgress_PendingRecurrentWithoutSubcategories(t *testing.T) {
	snapshot := snapshotWithBudgets(
		budgetOf("Arriendo", entity.BudgetTypeRecurrent, totalPtr(450000), nil),
	)

	t.Run("pending when no realization exists", func(t *testing.T) {
		lines, pending := ComputeBudgetProgress(snapshot, nil, "2024-03")

		if !lines[0].Pending {
			t.Error("expected line to be pending")
		}
		if pending.Count != 1 {
			t.Errorf("expected pending count 1, got %d", pending.Count)
		}
		if !pending.Amount.Equal(decimal.NewFromInt(450000)) {
			t.Errorf("expected pending amount 450000, got %s", pending.Amount)
		}
	})

	t.Run("settled once the recurrent payment lands", func(t *testing.T) {
		payment := txn(entity.TransactionTypeExpenseDebit, 450000, date(2024, time.March, 5), "Arriendo")
		payment.IsRecurrentPayment = true
		payment.PeriodKey = "2024-03"

		lines, pending := ComputeBudgetProgress(snapshot, []*entity.Transaction{payment}, "2024-03")

		if lines[0].Pending {
			t.Error("expected line to be settled")
		}
		if pending.Count != 0 {
			t.Errorf("expected pending count 0, got %d", pending.Count)
		}
	})
}

func TestComputeBudgetProgress_PendingSubcategoriesDoNotDoubleCount(t *testing.T) {
	// The category also carries a stored total; with subcategories present it
	// must not contribute on top of the subcategory lines.
	snapshot := snapshotWithBudgets(
		budgetOf("Servicios", entity.BudgetTypeRecurrent, totalPtr(999999), map[string]decimal.Decimal{
			"Luz":  decimal.NewFromInt(50000),
			"Agua": decimal.NewFromInt(30000),
		}),
	)

	lines, pending := ComputeBudgetProgress(snapshot, nil, "2024-03")

	if pending.Count != 2 {
		t.Fatalf("expected 2 pending subcategory lines, got %d", pending.Count)
	}
	if !pending.Amount.Equal(decimal.NewFromInt(80000)) {
		t.Errorf("expected pending amount 80000, got %s", pending.Amount)
	}
	if !lines[0].Pending {
		t.Error("category line should surface pending subcategories")
	}
}

func TestComputeBudgetProgress_SubcategoryRealizationClearsOnlyItsLine(t *testing.T) {
	snapshot := snapshotWithBudgets(
		budgetOf("Servicios", entity.BudgetTypeRecurrent, nil, map[string]decimal.Decimal{
			"Luz":  decimal.NewFromInt(50000),
			"Agua": decimal.NewFromInt(30000),
		}),
	)

	sub := "Luz"
	payment := txn(entity.TransactionTypeExpenseDebit, 50000, date(2024, time.March, 3), "Servicios")
	payment.Subcategory = &sub
	payment.IsRecurrentPayment = true
	payment.PeriodKey = "2024-03"

	lines, pending := ComputeBudgetProgress(snapshot, []*entity.Transaction{payment}, "2024-03")

	if pending.Count != 1 {
		t.Fatalf("expected 1 pending line left, got %d", pending.Count)
	}
	if !pending.Amount.Equal(decimal.NewFromInt(30000)) {
		t.Errorf("expected pending amount 30000, got %s", pending.Amount)
	}

	for _, subLine := range lines[0].Subcategories {
		switch subLine.Name {
		case "Luz":
			if subLine.Pending {
				t.Error("Luz should be settled")
			}
			if !subLine.Spent.Equal(decimal.NewFromInt(50000)) {
				t.Errorf("expected Luz spent 50000, got %s", subLine.Spent)
			}
		case "Agua":
			if !subLine.Pending {
				t.Error("Agua should still be pending")
			}
		}
	}
}

func TestComputeBudgetProgress_DebtPaymentTransactionsIgnored(t *testing.T) {
	snapshot := snapshotWithBudgets(
		budgetOf("Compras", entity.BudgetTypeVariable, totalPtr(1000), nil),
	)
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeExpenseDebit, 400, date(2024, time.March, 1), "Compras"),
		txn(entity.TransactionTypeExpenseDebit, 9999, date(2024, time.March, 2), entity.CategoryDebtPayment),
	}

	lines, _ := ComputeBudgetProgress(snapshot, transactions, "2024-03")

	if !lines[0].Spent.Equal(decimal.NewFromInt(400)) {
		t.Errorf("bill payments must not count as category spend, got %s", lines[0].Spent)
	}
}
