// Package creditcard contains credit card-related use cases.
package creditcard

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

func billFixture() (*entity.WalletSnapshot, *entity.CreditCard, *entity.Installment, *entity.Installment) {
	walletID := uuid.New()
	card := entity.NewCreditCard(uuid.New(), walletID, "Visa", decimal.NewFromInt(1500000))
	cardID := card.ID

	notebook := entity.NewInstallment(
		uuid.New(), walletID, "Notebook",
		decimal.NewFromInt(1200000), 12,
		entity.InstallmentTypeCreditCard, &cardID,
	)
	notebook.PaidInstallments = 3

	bicycle := entity.NewInstallment(
		uuid.New(), walletID, "Bicicleta",
		decimal.NewFromInt(300000), 6,
		entity.InstallmentTypeCreditCard, &cardID,
	)
	bicycle.PaidInstallments = 2

	snapshot := &entity.WalletSnapshot{
		Wallet:       entity.NewWallet(walletID, uuid.New(), "Casa", entity.DefaultTransactionCategories()),
		CreditCards:  []*entity.CreditCard{card},
		Installments: []*entity.Installment{notebook, bicycle},
	}
	return snapshot, card, notebook, bicycle
}

func TestPlanPayCardBill(t *testing.T) {
	snapshot, card, notebook, bicycle := billFixture()
	txnID := uuid.New()

	plan, err := PlanPayCardBill(snapshot, PayCardBillInput{
		WalletID:       snapshot.Wallet.ID,
		CardID:         card.ID,
		Date:           time.Date(2026, time.January, 25, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.NewFromInt(150000),
		InstallmentIDs: []uuid.UUID{notebook.ID, bicycle.ID},
	}, txnID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	txn := plan.Transaction
	if txn.Category != entity.CategoryDebtPayment {
		t.Errorf("expected the reserved debt-payment category, got %s", txn.Category)
	}
	if txn.Type != entity.TransactionTypeExpenseDebit {
		t.Errorf("bill payments are debit outflows, got %s", txn.Type)
	}
	if len(txn.PaidInstallmentIDs) != 2 {
		t.Errorf("expected 2 advanced installments recorded, got %d", len(txn.PaidInstallmentIDs))
	}
	// 100000 + 50000 monthly dues.
	if txn.InstallmentPaymentPortion == nil || !txn.InstallmentPaymentPortion.Equal(decimal.NewFromInt(150000)) {
		t.Errorf("expected installment portion 150000, got %v", txn.InstallmentPaymentPortion)
	}

	if len(plan.Installments) != 2 {
		t.Fatalf("expected 2 advanced installments, got %d", len(plan.Installments))
	}
	advanced := plan.Installments[0]
	if advanced.PaidInstallments != 4 {
		t.Errorf("expected counter 4, got %d", advanced.PaidInstallments)
	}
	entry, ok := advanced.PaymentHistory["2026-01"]
	if !ok || !entry.Paid {
		t.Fatal("expected a paid history entry for the bill's period")
	}
	if entry.TransactionID == nil || *entry.TransactionID != txnID {
		t.Error("bill-paid entries must be locked to the transaction")
	}

	// Pure planning: the snapshot's installments are untouched.
	if notebook.PaidInstallments != 3 || len(notebook.PaymentHistory) != 0 {
		t.Error("planner must not mutate the snapshot")
	}
}

func TestPlanPayCardBill_WithoutInstallments(t *testing.T) {
	snapshot, card, _, _ := billFixture()

	plan, err := PlanPayCardBill(snapshot, PayCardBillInput{
		WalletID: snapshot.Wallet.ID,
		CardID:   card.ID,
		Date:     time.Date(2026, time.January, 25, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(80000),
	}, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Installments) != 0 {
		t.Errorf("expected no installment advancement, got %d", len(plan.Installments))
	}
	if plan.Transaction.InstallmentPaymentPortion != nil {
		t.Error("expected no installment portion on a plain bill")
	}
}

func TestPlanPayCardBill_UnknownCard(t *testing.T) {
	snapshot, _, _, _ := billFixture()

	_, err := PlanPayCardBill(snapshot, PayCardBillInput{
		WalletID: snapshot.Wallet.ID,
		CardID:   uuid.New(),
		Date:     time.Date(2026, time.January, 25, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(80000),
	}, uuid.New())

	if !errors.Is(err, domainerror.ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestPlanPayCardBill_PaidOffSelectionRefused(t *testing.T) {
	snapshot, card, notebook, _ := billFixture()
	notebook.PaidInstallments = notebook.TotalInstallments

	_, err := PlanPayCardBill(snapshot, PayCardBillInput{
		WalletID:       snapshot.Wallet.ID,
		CardID:         card.ID,
		Date:           time.Date(2026, time.January, 25, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.NewFromInt(100000),
		InstallmentIDs: []uuid.UUID{notebook.ID},
	}, uuid.New())

	if !errors.Is(err, domainerror.ErrAllInstallmentsPaid) {
		t.Fatalf("expected ErrAllInstallmentsPaid, got %v", err)
	}
}

func TestPlanPayCardBill_DoubleSettlementRefused(t *testing.T) {
	snapshot, card, notebook, _ := billFixture()
	notebook.PaymentHistory["2026-01"] = entity.InstallmentPayment{
		Amount: decimal.NewFromInt(100000),
		Paid:   true,
	}

	_, err := PlanPayCardBill(snapshot, PayCardBillInput{
		WalletID:       snapshot.Wallet.ID,
		CardID:         card.ID,
		Date:           time.Date(2026, time.January, 25, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.NewFromInt(100000),
		InstallmentIDs: []uuid.UUID{notebook.ID},
	}, uuid.New())

	if !errors.Is(err, domainerror.ErrAllInstallmentsPaid) {
		t.Fatalf("expected a refusal on double settlement, got %v", err)
	}
}
