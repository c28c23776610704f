package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func amount(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func txn(txnType entity.TransactionType, value int64, txnDate time.Time, category string) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		Date:     txnDate,
		Amount:   amount(value),
		Type:     txnType,
		Category: category,
	}
}

func TestSelectPeriod(t *testing.T) {
	march := entity.Period{Year: 2024, Month: time.March}

	inMarch := txn(entity.TransactionTypeIncome, 100, date(2024, time.March, 1), entity.CategoryIncome)
	lateMarch := txn(entity.TransactionTypeExpenseDebit, 50, date(2024, time.March, 31), "Compras")
	inApril := txn(entity.TransactionTypeExpenseDebit, 50, date(2024, time.April, 1), "Compras")
	lastYear := txn(entity.TransactionTypeExpenseDebit, 50, date(2023, time.March, 15), "Compras")

	transactions := []*entity.Transaction{inMarch, inApril, lateMarch, lastYear}

	selected := SelectPeriod(transactions, march)

	if len(selected) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(selected))
	}

	// Stable order preserved from input.
	if selected[0] != inMarch || selected[1] != lateMarch {
		t.Error("expected input order to be preserved")
	}

	// Input must not be reordered or shrunk.
	if len(transactions) != 4 {
		t.Error("input slice was modified")
	}
}

func TestComputeTotals_BasicScenario(t *testing.T) {
	period := entity.Period{Year: 2024, Month: time.March}
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, 100000, date(2024, time.March, 1), entity.CategoryIncome),
		txn(entity.TransactionTypeExpenseDebit, 40000, date(2024, time.March, 15), "Compras"),
	}

	totals := ComputeTotals(SelectPeriod(transactions, period))

	if !totals.Income.Equal(amount(100000)) {
		t.Errorf("expected income 100000, got %s", totals.Income)
	}
	if !totals.DebitExpense.Equal(amount(40000)) {
		t.Errorf("expected debit expense 40000, got %s", totals.DebitExpense)
	}
	if !totals.CreditExpense.IsZero() {
		t.Errorf("expected zero credit expense, got %s", totals.CreditExpense)
	}
	if !totals.TotalExpense.Equal(amount(40000)) {
		t.Errorf("expected total expense 40000, got %s", totals.TotalExpense)
	}
	if !totals.CashFlow().Equal(amount(60000)) {
		t.Errorf("expected cash flow 60000, got %s", totals.CashFlow())
	}
}

func TestComputeTotals_DebtPaymentIsARealOutflow(t *testing.T) {
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, 500, date(2024, time.May, 2), entity.CategoryIncome),
		txn(entity.TransactionTypeExpenseDebit, 200, date(2024, time.May, 10), entity.CategoryDebtPayment),
		txn(entity.TransactionTypeExpenseCredit, 100, date(2024, time.May, 12), "Compras"),
	}

	totals := ComputeTotals(transactions)

	if !totals.DebitExpense.Equal(amount(200)) {
		t.Errorf("expected debt payment in debit expense, got %s", totals.DebitExpense)
	}
	if !totals.TotalExpense.Equal(amount(300)) {
		t.Errorf("expected total expense 300, got %s", totals.TotalExpense)
	}
}

func TestComputeTotals_Conservation(t *testing.T) {
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, 900, date(2024, time.June, 1), entity.CategoryIncome),
		txn(entity.TransactionTypeExpenseDebit, 300, date(2024, time.June, 5), "Vivienda"),
		txn(entity.TransactionTypeExpenseCredit, 150, date(2024, time.June, 8), "Compras"),
		txn(entity.TransactionTypeExpenseDebit, 50, date(2024, time.June, 20), entity.CategoryDebtPayment),
	}

	totals := ComputeTotals(transactions)

	// totalIncome - totalExpense == cashFlow
	if !totals.Income.Sub(totals.TotalExpense).Equal(totals.CashFlow()) {
		t.Error("cash flow does not equal income minus expenses")
	}

	// Per-category spend (income and debt payments excluded) never exceeds
	// the total expense.
	perCategory := decimal.Zero
	for _, spent := range ExpensesByCategory(transactions) {
		perCategory = perCategory.Add(spent)
	}
	if perCategory.GreaterThan(totals.TotalExpense) {
		t.Errorf("per-category sum %s exceeds total expense %s", perCategory, totals.TotalExpense)
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, 123, date(2024, time.July, 1), entity.CategoryIncome),
		txn(entity.TransactionTypeExpenseCredit, 45, date(2024, time.July, 3), "Ocio"),
	}

	first := ComputeTotals(transactions)
	second := ComputeTotals(transactions)

	if !first.Income.Equal(second.Income) ||
		!first.DebitExpense.Equal(second.DebitExpense) ||
		!first.CreditExpense.Equal(second.CreditExpense) ||
		!first.TotalExpense.Equal(second.TotalExpense) {
		t.Error("repeated computation on the same input diverged")
	}
}
