package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

func TestComputeCardUtilization(t *testing.T) {
	cardID := uuid.New()
	otherCardID := uuid.New()

	card := &entity.CreditCard{
		ID:            cardID,
		Name:          "Visa",
		Limit:         decimal.NewFromInt(2000000),
		BankAvailable: decimal.NewFromInt(1500000),
	}
	otherCard := &entity.CreditCard{
		ID:    otherCardID,
		Name:  "Master",
		Limit: decimal.NewFromInt(1000000),
	}

	cardInstallment := &entity.Installment{
		ID:                uuid.New(),
		TotalAmount:       decimal.NewFromInt(1200000),
		TotalInstallments: 12,
		PaidInstallments:  3,
		Type:              entity.InstallmentTypeCreditCard,
		CardID:            &cardID,
	}
	// Consumer loans never count against a card limit.
	loan := &entity.Installment{
		ID:                uuid.New(),
		TotalAmount:       decimal.NewFromInt(500000),
		TotalInstallments: 5,
		PaidInstallments:  0,
		Type:              entity.InstallmentTypeConsumerLoan,
	}

	snapshot := &entity.WalletSnapshot{
		Wallet:       &entity.Wallet{ID: uuid.New()},
		CreditCards:  []*entity.CreditCard{card, otherCard},
		Installments: []*entity.Installment{cardInstallment, loan},
	}

	creditTxn := txn(entity.TransactionTypeExpenseCredit, 150000, date(2024, time.March, 10), "Compras")
	creditTxn.CardID = &cardID
	debitTxn := txn(entity.TransactionTypeExpenseDebit, 999999, date(2024, time.March, 11), "Compras")

	summary := ComputeCardUtilization(snapshot, []*entity.Transaction{creditTxn, debitTxn})

	if len(summary.PerCard) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(summary.PerCard))
	}

	visa := summary.PerCard[0]
	if !visa.InstallmentDebt.Equal(decimal.NewFromInt(900000)) {
		t.Errorf("expected installment debt 900000, got %s", visa.InstallmentDebt)
	}
	if !visa.RealAvailable.Equal(decimal.NewFromInt(1100000)) {
		t.Errorf("expected real available 1100000, got %s", visa.RealAvailable)
	}
	if !visa.Used.Equal(decimal.NewFromInt(150000)) {
		t.Errorf("expected used 150000, got %s", visa.Used)
	}
	if !visa.AvailableAfterUsage.Equal(decimal.NewFromInt(950000)) {
		t.Errorf("expected available after usage 950000, got %s", visa.AvailableAfterUsage)
	}

	master := summary.PerCard[1]
	if !master.InstallmentDebt.IsZero() || !master.Used.IsZero() {
		t.Error("the other card must not pick up foreign debt or spending")
	}

	// Aggregate is derived from the per-card figures.
	if !summary.TotalLimit.Equal(decimal.NewFromInt(3000000)) {
		t.Errorf("expected total limit 3000000, got %s", summary.TotalLimit)
	}
	if !summary.TotalInstallmentDebt.Equal(decimal.NewFromInt(900000)) {
		t.Errorf("expected total installment debt 900000, got %s", summary.TotalInstallmentDebt)
	}
	if !summary.AvailableAfterUsage.Equal(decimal.NewFromInt(1950000)) {
		t.Errorf("expected aggregate available 1950000, got %s", summary.AvailableAfterUsage)
	}
}

func TestComputeCardUtilization_DanglingCardReference(t *testing.T) {
	ghostID := uuid.New()
	cardID := uuid.New()

	snapshot := &entity.WalletSnapshot{
		Wallet: &entity.Wallet{ID: uuid.New()},
		CreditCards: []*entity.CreditCard{
			{ID: cardID, Name: "Visa", Limit: decimal.NewFromInt(1000)},
		},
		Installments: []*entity.Installment{
			{
				ID:                uuid.New(),
				TotalAmount:       decimal.NewFromInt(500),
				TotalInstallments: 5,
				Type:              entity.InstallmentTypeCreditCard,
				CardID:            &ghostID, // card was deleted
			},
		},
	}

	orphan := txn(entity.TransactionTypeExpenseCredit, 100, date(2024, time.March, 1), "Compras")
	orphan.CardID = &ghostID

	summary := ComputeCardUtilization(snapshot, []*entity.Transaction{orphan})

	// Dangling references are "no data for this line", never an error.
	if !summary.PerCard[0].Used.IsZero() || !summary.PerCard[0].InstallmentDebt.IsZero() {
		t.Error("dangling references must not attach to another card")
	}
	if !summary.Used.IsZero() {
		t.Errorf("aggregate used must stay zero, got %s", summary.Used)
	}
}

func TestComputeCardUtilization_PaidOffInstallmentCarriesNoDebt(t *testing.T) {
	cardID := uuid.New()
	snapshot := &entity.WalletSnapshot{
		Wallet: &entity.Wallet{ID: uuid.New()},
		CreditCards: []*entity.CreditCard{
			{ID: cardID, Name: "Visa", Limit: decimal.NewFromInt(1000)},
		},
		Installments: []*entity.Installment{
			{
				ID:                uuid.New(),
				TotalAmount:       decimal.NewFromInt(600),
				TotalInstallments: 6,
				PaidInstallments:  6,
				Type:              entity.InstallmentTypeCreditCard,
				CardID:            &cardID,
			},
		},
	}

	summary := ComputeCardUtilization(snapshot, nil)

	if !summary.PerCard[0].RealAvailable.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("paid-off installments must free the limit, got %s", summary.PerCard[0].RealAvailable)
	}
}
