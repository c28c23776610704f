package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

func TestExpensesByCategory(t *testing.T) {
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeExpenseDebit, 30000, date(2026, time.January, 5), "Supermercado"),
		txn(entity.TransactionTypeExpenseCredit, 20000, date(2026, time.January, 12), "Supermercado"),
		txn(entity.TransactionTypeExpenseDebit, 15000, date(2026, time.January, 20), "Transporte"),
		txn(entity.TransactionTypeIncome, 100000, date(2026, time.January, 1), entity.CategoryIncome),
		txn(entity.TransactionTypeExpenseDebit, 50000, date(2026, time.January, 28), entity.CategoryDebtPayment),
	}

	byCategory := ExpensesByCategory(transactions)

	if len(byCategory) != 2 {
		t.Fatalf("expected 2 categories, got %d: %v", len(byCategory), byCategory)
	}
	if !byCategory["Supermercado"].Equal(decimal.NewFromInt(50000)) {
		t.Errorf("expected Supermercado 50000, got %s", byCategory["Supermercado"])
	}
	if !byCategory["Transporte"].Equal(decimal.NewFromInt(15000)) {
		t.Errorf("expected Transporte 15000, got %s", byCategory["Transporte"])
	}
	if _, ok := byCategory[entity.CategoryDebtPayment]; ok {
		t.Error("card bill payments must not appear in the comparison")
	}
	if _, ok := byCategory[entity.CategoryIncome]; ok {
		t.Error("income must not appear in the comparison")
	}
}

func TestCompareToPreviousMonth(t *testing.T) {
	current := map[string]decimal.Decimal{
		"Supermercado": amount(60000),
		"Transporte":   amount(10000),
		"Farmacia":     amount(8000),
	}
	previous := map[string]decimal.Decimal{
		"Supermercado": amount(40000),
		"Transporte":   amount(10000),
		"Restaurantes": amount(25000),
	}

	rows := CompareToPreviousMonth(current, previous)

	want := []struct {
		category string
		current  int64
		previous int64
		delta    int64
		pct      *string
	}{
		{category: "Farmacia", current: 8000, previous: 0, delta: 8000, pct: nil},
		{category: "Restaurantes", current: 0, previous: 25000, delta: -25000, pct: strPtr("-100")},
		{category: "Supermercado", current: 60000, previous: 40000, delta: 20000, pct: strPtr("50")},
		{category: "Transporte", current: 10000, previous: 10000, delta: 0, pct: strPtr("0")},
	}

	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}

	for i, w := range want {
		row := rows[i]
		if row.Category != w.category {
			t.Fatalf("row %d: expected category %s, got %s", i, w.category, row.Category)
		}
		if !row.Current.Equal(amount(w.current)) || !row.Previous.Equal(amount(w.previous)) {
			t.Errorf("%s: got current %s previous %s", w.category, row.Current, row.Previous)
		}
		if !row.Delta.Equal(amount(w.delta)) {
			t.Errorf("%s: expected delta %d, got %s", w.category, w.delta, row.Delta)
		}
		if w.pct == nil {
			if row.PctChange != nil {
				t.Errorf("%s: expected undefined pct change, got %s", w.category, row.PctChange)
			}
			continue
		}
		if row.PctChange == nil {
			t.Errorf("%s: expected pct change %s, got nil", w.category, *w.pct)
			continue
		}
		if !row.PctChange.Equal(decimal.RequireFromString(*w.pct)) {
			t.Errorf("%s: expected pct change %s, got %s", w.category, *w.pct, row.PctChange)
		}
	}
}

func TestCompareToPreviousMonth_Empty(t *testing.T) {
	rows := CompareToPreviousMonth(nil, nil)
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func strPtr(s string) *string { return &s }
