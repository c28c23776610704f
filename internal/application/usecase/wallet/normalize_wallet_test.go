// Package wallet contains wallet-related use cases.
package wallet

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

func legacySnapshot() *entity.WalletSnapshot {
	w := entity.NewWallet(uuid.New(), uuid.New(), "Casa", nil)
	w.TransactionCategories = nil
	w.ManualSurplus = map[string]decimal.Decimal{
		"2024-3": decimal.NewFromInt(5000),
	}

	installment := &entity.Installment{
		ID:                uuid.New(),
		WalletID:          w.ID,
		TotalAmount:       decimal.NewFromInt(120000),
		TotalInstallments: 12,
		PaidInstallments:  15, // corrupt counter from a legacy double-write
		Type:              entity.InstallmentTypeConsumerLoan,
		PaymentHistory: map[string]entity.InstallmentPayment{
			"2024-3": {Amount: decimal.NewFromInt(10000), Paid: true},
		},
	}

	income := entity.NewFixedIncome(uuid.New(), w.ID, "Sueldo", decimal.NewFromInt(100000))
	income.Payments["2024-3"] = entity.FixedIncomePayment{Amount: decimal.NewFromInt(100000), Received: true}

	budget := &entity.Budget{
		ID:       uuid.New(),
		WalletID: w.ID,
		Category: "Supermercado",
		Type:     entity.BudgetTypeRecurrent,
		Payments: map[string]entity.BudgetPayment{
			"2024-3": {Amount: decimal.NewFromInt(40000), PaymentType: entity.TransactionTypeExpenseDebit},
		},
	}

	return &entity.WalletSnapshot{
		Wallet:       w,
		Installments: []*entity.Installment{installment},
		FixedIncomes: []*entity.FixedIncome{income},
		Budgets:      []*entity.Budget{budget},
	}
}

func TestNormalizeSnapshot_MigratesLegacyData(t *testing.T) {
	snapshot := legacySnapshot()

	normalized, changed := NormalizeSnapshot(snapshot)

	if !changed {
		t.Fatal("expected normalization to report changes")
	}

	t.Run("default categories seeded", func(t *testing.T) {
		if len(normalized.Wallet.TransactionCategories) == 0 {
			t.Fatal("expected default categories")
		}
		if _, ok := normalized.Wallet.TransactionCategories[entity.CategoryIncome]; !ok {
			t.Error("expected the reserved income category")
		}
		if _, ok := normalized.Wallet.TransactionCategories[entity.CategoryDebtPayment]; !ok {
			t.Error("expected the reserved debt-payment category")
		}
	})

	t.Run("period keys canonicalized everywhere", func(t *testing.T) {
		if _, ok := normalized.Wallet.ManualSurplus["2024-03"]; !ok {
			t.Error("expected canonical surplus key 2024-03")
		}
		if _, ok := normalized.Wallet.ManualSurplus["2024-3"]; ok {
			t.Error("legacy surplus key must be gone")
		}
		if _, ok := normalized.Installments[0].PaymentHistory["2024-03"]; !ok {
			t.Error("expected canonical installment history key")
		}
		if _, ok := normalized.FixedIncomes[0].Payments["2024-03"]; !ok {
			t.Error("expected canonical fixed income payment key")
		}
		if _, ok := normalized.Budgets[0].Payments["2024-03"]; !ok {
			t.Error("expected canonical budget payment key")
		}
	})

	t.Run("paid counter clamped", func(t *testing.T) {
		if got := normalized.Installments[0].PaidInstallments; got != 12 {
			t.Errorf("expected paid counter clamped to 12, got %d", got)
		}
	})

	t.Run("input snapshot untouched", func(t *testing.T) {
		if snapshot.Installments[0].PaidInstallments != 15 {
			t.Error("normalization must not mutate its input")
		}
		if _, ok := snapshot.Wallet.ManualSurplus["2024-3"]; !ok {
			t.Error("normalization must not mutate its input maps")
		}
	})
}

func TestNormalizeSnapshot_Idempotent(t *testing.T) {
	snapshot := legacySnapshot()

	once, changed := NormalizeSnapshot(snapshot)
	if !changed {
		t.Fatal("expected first pass to change the snapshot")
	}

	twice, changedAgain := NormalizeSnapshot(once)
	if changedAgain {
		t.Error("expected second pass to be a no-op")
	}
	if !reflect.DeepEqual(once, twice) {
		t.Error("expected second pass to return an identical snapshot")
	}
}

func TestNormalizeSnapshot_NegativePaidCounter(t *testing.T) {
	snapshot := legacySnapshot()
	snapshot.Installments[0].PaidInstallments = -2

	normalized, changed := NormalizeSnapshot(snapshot)

	if !changed {
		t.Fatal("expected normalization to report changes")
	}
	if got := normalized.Installments[0].PaidInstallments; got != 0 {
		t.Errorf("expected paid counter floored at 0, got %d", got)
	}
}

func TestNormalizeSnapshot_UnparseableKeysSurvive(t *testing.T) {
	snapshot := legacySnapshot()
	snapshot.Wallet.ManualSurplus["garbage"] = decimal.NewFromInt(1)

	normalized, _ := NormalizeSnapshot(snapshot)

	if _, ok := normalized.Wallet.ManualSurplus["garbage"]; !ok {
		t.Error("unparseable keys must be preserved as-is")
	}
}
