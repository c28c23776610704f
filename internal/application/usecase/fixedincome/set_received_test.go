// Package fixedincome contains fixed income-related use cases.
package fixedincome

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

func receivedFixture() (*entity.WalletSnapshot, *entity.FixedIncome) {
	walletID := uuid.New()
	income := entity.NewFixedIncome(uuid.New(), walletID, "Sueldo", decimal.NewFromInt(800000))

	return &entity.WalletSnapshot{
		Wallet:       entity.NewWallet(walletID, uuid.New(), "Casa", entity.DefaultTransactionCategories()),
		FixedIncomes: []*entity.FixedIncome{income},
	}, income
}

func TestPlanSetReceived_MarksAndMaterializes(t *testing.T) {
	snapshot, income := receivedFixture()
	period := entity.Period{Year: 2026, Month: time.January}
	txnID := uuid.New()

	plan := PlanSetReceived(snapshot, income, period, decimal.NewFromInt(810000), true, txnID)

	payment, ok := plan.Income.Payments["2026-01"]
	if !ok || !payment.Received {
		t.Fatal("expected the period marked received")
	}
	if !payment.Amount.Equal(decimal.NewFromInt(810000)) {
		t.Errorf("expected recorded amount 810000, got %s", payment.Amount)
	}

	txn := plan.CreateTransaction
	if txn == nil {
		t.Fatal("expected a synthetic transaction")
	}
	if txn.ID != txnID {
		t.Errorf("expected transaction id %s, got %s", txnID, txn.ID)
	}
	if txn.Type != entity.TransactionTypeIncome || txn.Category != entity.CategoryIncome {
		t.Errorf("expected an income transaction, got %s/%s", txn.Type, txn.Category)
	}
	if !txn.IsFixedIncomePayment || txn.FixedIncomeID == nil || *txn.FixedIncomeID != income.ID {
		t.Error("expected the transaction linked to the fixed income")
	}
	if txn.PeriodKey != "2026-01" {
		t.Errorf("expected period key 2026-01, got %s", txn.PeriodKey)
	}
	if plan.DeleteTransaction != nil {
		t.Error("nothing to delete on first realization")
	}

	if _, ok := income.Payments["2026-01"]; ok {
		t.Error("planner must not mutate the snapshot's income")
	}
}

func TestPlanSetReceived_UnmarkRemovesExactlyTheRealization(t *testing.T) {
	snapshot, income := receivedFixture()
	period := entity.Period{Year: 2026, Month: time.January}
	income.Payments["2026-01"] = entity.FixedIncomePayment{Amount: decimal.NewFromInt(800000), Received: true}

	incomeID := income.ID
	realization := entity.NewTransaction(
		uuid.New(), income.WalletID, period.Start(), "Sueldo",
		decimal.NewFromInt(800000), entity.TransactionTypeIncome, entity.CategoryIncome, nil, nil,
	)
	realization.IsFixedIncomePayment = true
	realization.FixedIncomeID = &incomeID
	realization.PeriodKey = "2026-01"

	// Another plain income transaction in the same period must be untouched.
	other := entity.NewTransaction(
		uuid.New(), income.WalletID, period.Start(), "Venta",
		decimal.NewFromInt(30000), entity.TransactionTypeIncome, entity.CategoryIncome, nil, nil,
	)
	snapshot.Transactions = []*entity.Transaction{other, realization}

	plan := PlanSetReceived(snapshot, income, period, decimal.Zero, false, uuid.New())

	if plan.DeleteTransaction == nil {
		t.Fatal("expected the realization transaction scheduled for deletion")
	}
	if *plan.DeleteTransaction != realization.ID {
		t.Errorf("expected deletion of %s, got %s", realization.ID, *plan.DeleteTransaction)
	}
	if plan.CreateTransaction != nil {
		t.Error("nothing to create when unmarking")
	}
	if _, ok := plan.Income.Payments["2026-01"]; ok {
		t.Error("expected the period cleared")
	}
}

func TestPlanSetReceived_RemarkReplacesTransaction(t *testing.T) {
	snapshot, income := receivedFixture()
	period := entity.Period{Year: 2026, Month: time.January}
	income.Payments["2026-01"] = entity.FixedIncomePayment{Amount: decimal.NewFromInt(800000), Received: true}

	incomeID := income.ID
	stale := entity.NewTransaction(
		uuid.New(), income.WalletID, period.Start(), "Sueldo",
		decimal.NewFromInt(800000), entity.TransactionTypeIncome, entity.CategoryIncome, nil, nil,
	)
	stale.IsFixedIncomePayment = true
	stale.FixedIncomeID = &incomeID
	stale.PeriodKey = "2026-01"
	snapshot.Transactions = []*entity.Transaction{stale}

	freshID := uuid.New()
	plan := PlanSetReceived(snapshot, income, period, decimal.NewFromInt(820000), true, freshID)

	if plan.DeleteTransaction == nil || *plan.DeleteTransaction != stale.ID {
		t.Error("expected the stale realization replaced")
	}
	if plan.CreateTransaction == nil || plan.CreateTransaction.ID != freshID {
		t.Fatal("expected a fresh realization transaction")
	}
	if !plan.CreateTransaction.Amount.Equal(decimal.NewFromInt(820000)) {
		t.Errorf("expected new amount 820000, got %s", plan.CreateTransaction.Amount)
	}
	if !plan.Income.Payments["2026-01"].Amount.Equal(decimal.NewFromInt(820000)) {
		t.Error("expected the ledger updated to the new amount")
	}
}
