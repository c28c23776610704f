// Package transaction contains transaction-related use cases.
package transaction

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

func billPaymentFixture() (*entity.WalletSnapshot, *entity.Transaction) {
	walletID := uuid.New()
	cardID := uuid.New()

	installment := entity.NewInstallment(
		uuid.New(), walletID, "Notebook",
		decimal.NewFromInt(1200000), 12,
		entity.InstallmentTypeCreditCard, &cardID,
	)
	installment.PaidInstallments = 4

	untouched := entity.NewInstallment(
		uuid.New(), walletID, "Bicicleta",
		decimal.NewFromInt(300000), 6,
		entity.InstallmentTypeCreditCard, &cardID,
	)
	untouched.PaidInstallments = 2

	bill := entity.NewTransaction(
		uuid.New(), walletID,
		time.Date(2026, time.January, 25, 0, 0, 0, 0, time.UTC),
		"Pago tarjeta enero",
		decimal.NewFromInt(100000),
		entity.TransactionTypeExpenseDebit,
		entity.CategoryDebtPayment,
		nil, nil,
	)
	bill.PaidInstallmentIDs = []uuid.UUID{installment.ID}

	txnID := bill.ID
	installment.PaymentHistory["2026-01"] = entity.InstallmentPayment{
		Amount:        decimal.NewFromInt(100000),
		Paid:          true,
		TransactionID: &txnID,
	}
	// A manual entry from an earlier period stays untouched by the cascade.
	installment.PaymentHistory["2025-12"] = entity.InstallmentPayment{
		Amount: decimal.NewFromInt(100000),
		Paid:   true,
	}

	wallet := entity.NewWallet(walletID, uuid.New(), "Casa", entity.DefaultTransactionCategories())
	snapshot := &entity.WalletSnapshot{
		Wallet:       wallet,
		Transactions: []*entity.Transaction{bill},
		Installments: []*entity.Installment{installment, untouched},
	}
	return snapshot, bill
}

func TestPlanDeleteCascade_ReversesInstallmentAdvancement(t *testing.T) {
	snapshot, bill := billPaymentFixture()

	cascade := PlanDeleteCascade(snapshot, bill)

	if len(cascade.Installments) != 1 {
		t.Fatalf("expected 1 installment rollback, got %d", len(cascade.Installments))
	}

	reverted := cascade.Installments[0]
	if reverted.PaidInstallments != 3 {
		t.Errorf("expected paid counter back to 3, got %d", reverted.PaidInstallments)
	}
	if _, ok := reverted.PaymentHistory["2026-01"]; ok {
		t.Error("the locked history entry must be removed")
	}
	if _, ok := reverted.PaymentHistory["2025-12"]; !ok {
		t.Error("unrelated history entries must survive")
	}

	// The snapshot itself is untouched: the planner works on copies.
	original, _ := snapshot.FindInstallment(reverted.ID)
	if original.PaidInstallments != 4 {
		t.Error("planner must not mutate the snapshot")
	}
	if _, ok := original.PaymentHistory["2026-01"]; !ok {
		t.Error("planner must not mutate the snapshot's history")
	}
}

func TestPlanDeleteCascade_FixedIncomeRealization(t *testing.T) {
	walletID := uuid.New()
	income := entity.NewFixedIncome(uuid.New(), walletID, "Sueldo", decimal.NewFromInt(800000))
	income.Payments["2026-01"] = entity.FixedIncomePayment{Amount: decimal.NewFromInt(800000), Received: true}
	income.Payments["2025-12"] = entity.FixedIncomePayment{Amount: decimal.NewFromInt(790000), Received: true}

	incomeID := income.ID
	realization := entity.NewTransaction(
		uuid.New(), walletID,
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		"Sueldo enero",
		decimal.NewFromInt(800000),
		entity.TransactionTypeIncome,
		entity.CategoryIncome,
		nil, nil,
	)
	realization.IsFixedIncomePayment = true
	realization.FixedIncomeID = &incomeID
	realization.PeriodKey = "2026-01"

	snapshot := &entity.WalletSnapshot{
		Wallet:       entity.NewWallet(walletID, uuid.New(), "Casa", entity.DefaultTransactionCategories()),
		Transactions: []*entity.Transaction{realization},
		FixedIncomes: []*entity.FixedIncome{income},
	}

	cascade := PlanDeleteCascade(snapshot, realization)

	if len(cascade.FixedIncomes) != 1 {
		t.Fatalf("expected 1 fixed income rollback, got %d", len(cascade.FixedIncomes))
	}
	if _, ok := cascade.FixedIncomes[0].Payments["2026-01"]; ok {
		t.Error("the realized period must be cleared")
	}
	if _, ok := cascade.FixedIncomes[0].Payments["2025-12"]; !ok {
		t.Error("other periods must survive")
	}
	if _, ok := income.Payments["2026-01"]; !ok {
		t.Error("planner must not mutate the snapshot")
	}
}

func TestPlanDeleteCascade_RecurrentPayment(t *testing.T) {
	walletID := uuid.New()
	budget := &entity.Budget{
		ID:       uuid.New(),
		WalletID: walletID,
		Category: "Arriendo",
		Type:     entity.BudgetTypeRecurrent,
		Payments: map[string]entity.BudgetPayment{
			"2026-01": {Amount: decimal.NewFromInt(450000), PaymentType: entity.TransactionTypeExpenseDebit},
		},
	}

	payment := entity.NewTransaction(
		uuid.New(), walletID,
		time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		"Arriendo enero",
		decimal.NewFromInt(450000),
		entity.TransactionTypeExpenseDebit,
		"Arriendo",
		nil, nil,
	)
	payment.IsRecurrentPayment = true
	payment.PeriodKey = "2026-01"

	snapshot := &entity.WalletSnapshot{
		Wallet:       entity.NewWallet(walletID, uuid.New(), "Casa", entity.DefaultTransactionCategories()),
		Transactions: []*entity.Transaction{payment},
		Budgets:      []*entity.Budget{budget},
	}

	cascade := PlanDeleteCascade(snapshot, payment)

	if len(cascade.Budgets) != 1 {
		t.Fatalf("expected 1 budget rollback, got %d", len(cascade.Budgets))
	}
	if _, ok := cascade.Budgets[0].Payments["2026-01"]; ok {
		t.Error("the ledger entry must be cleared")
	}
	if _, ok := budget.Payments["2026-01"]; !ok {
		t.Error("planner must not mutate the snapshot")
	}
}

func TestPlanDeleteCascade_PlainTransactionHasNoSideEffects(t *testing.T) {
	walletID := uuid.New()
	plain := entity.NewTransaction(
		uuid.New(), walletID,
		time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		"Supermercado",
		decimal.NewFromInt(35000),
		entity.TransactionTypeExpenseDebit,
		"Supermercado",
		nil, nil,
	)

	snapshot := &entity.WalletSnapshot{
		Wallet:       entity.NewWallet(walletID, uuid.New(), "Casa", entity.DefaultTransactionCategories()),
		Transactions: []*entity.Transaction{plain},
	}

	cascade := PlanDeleteCascade(snapshot, plain)

	if len(cascade.Installments)+len(cascade.FixedIncomes)+len(cascade.Budgets) != 0 {
		t.Errorf("expected an empty cascade, got %+v", cascade)
	}
}

func TestPlanDeleteCascade_DanglingReferences(t *testing.T) {
	walletID := uuid.New()
	missingInstallment := uuid.New()
	missingIncome := uuid.New()

	orphan := entity.NewTransaction(
		uuid.New(), walletID,
		time.Date(2026, time.January, 25, 0, 0, 0, 0, time.UTC),
		"Pago tarjeta",
		decimal.NewFromInt(50000),
		entity.TransactionTypeExpenseDebit,
		entity.CategoryDebtPayment,
		nil, nil,
	)
	orphan.PaidInstallmentIDs = []uuid.UUID{missingInstallment}
	orphan.IsFixedIncomePayment = true
	orphan.FixedIncomeID = &missingIncome
	orphan.PeriodKey = "2026-01"

	snapshot := &entity.WalletSnapshot{
		Wallet:       entity.NewWallet(walletID, uuid.New(), "Casa", entity.DefaultTransactionCategories()),
		Transactions: []*entity.Transaction{orphan},
	}

	cascade := PlanDeleteCascade(snapshot, orphan)

	if len(cascade.Installments)+len(cascade.FixedIncomes) != 0 {
		t.Errorf("dangling references must yield an empty cascade, got %+v", cascade)
	}
}
