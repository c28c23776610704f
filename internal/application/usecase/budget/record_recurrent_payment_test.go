// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

type snapshotRepo struct {
	snapshot *entity.WalletSnapshot
}

func (r *snapshotRepo) Create(_ context.Context, _ *entity.Wallet) error { return nil }
func (r *snapshotRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Wallet, error) {
	return r.snapshot.Wallet, nil
}
func (r *snapshotRepo) FindByUserID(_ context.Context, _ uuid.UUID) ([]*entity.Wallet, error) {
	return []*entity.Wallet{r.snapshot.Wallet}, nil
}
func (r *snapshotRepo) CountByUserID(_ context.Context, _ uuid.UUID) (int64, error) { return 1, nil }
func (r *snapshotRepo) Update(_ context.Context, _ *entity.Wallet) error            { return nil }
func (r *snapshotRepo) Delete(_ context.Context, _ uuid.UUID) error                 { return nil }
func (r *snapshotRepo) GetSnapshot(_ context.Context, _ uuid.UUID) (*entity.WalletSnapshot, error) {
	return r.snapshot, nil
}

type recordingBudgetRepo struct {
	upserted []*entity.Budget
	existing *entity.Budget
}

func (r *recordingBudgetRepo) Upsert(_ context.Context, b *entity.Budget) error {
	r.upserted = append(r.upserted, b)
	return nil
}
func (r *recordingBudgetRepo) FindByWallet(_ context.Context, _ uuid.UUID) ([]*entity.Budget, error) {
	if r.existing == nil {
		return nil, nil
	}
	return []*entity.Budget{r.existing}, nil
}
func (r *recordingBudgetRepo) FindByWalletAndCategory(_ context.Context, _ uuid.UUID, category string) (*entity.Budget, error) {
	if r.existing != nil && r.existing.Category == category {
		return r.existing, nil
	}
	return nil, nil
}
func (r *recordingBudgetRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type recordingTxnRepo struct {
	created []*entity.Transaction
}

func (r *recordingTxnRepo) Create(_ context.Context, txn *entity.Transaction) error {
	r.created = append(r.created, txn)
	return nil
}
func (r *recordingTxnRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}
func (r *recordingTxnRepo) FindByWallet(_ context.Context, _ uuid.UUID) ([]*entity.Transaction, error) {
	return r.created, nil
}
func (r *recordingTxnRepo) FindByWalletAndDateRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*entity.Transaction, error) {
	return r.created, nil
}
func (r *recordingTxnRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }
func (r *recordingTxnRepo) Delete(_ context.Context, _ uuid.UUID) error           { return nil }

type seqIDGen struct{}

func (seqIDGen) NewID() uuid.UUID { return uuid.New() }

func recurrentFixture(userID uuid.UUID) *entity.WalletSnapshot {
	wallet := entity.NewWallet(uuid.New(), userID, "Casa", entity.DefaultTransactionCategories())
	total := decimal.NewFromInt(450000)
	return &entity.WalletSnapshot{
		Wallet: wallet,
		Budgets: []*entity.Budget{
			{
				ID:       uuid.New(),
				WalletID: wallet.ID,
				Category: "Arriendo",
				Type:     entity.BudgetTypeRecurrent,
				Total:    &total,
			},
			{
				ID:       uuid.New(),
				WalletID: wallet.ID,
				Category: "Entretenimiento",
				Type:     entity.BudgetTypeVariable,
				Total:    &total,
			},
		},
	}
}

func TestRecordRecurrentPayment(t *testing.T) {
	userID := uuid.New()
	snapshot := recurrentFixture(userID)
	budgetRepo := &recordingBudgetRepo{}
	txnRepo := &recordingTxnRepo{}

	uc := NewRecordRecurrentPaymentUseCase(
		&snapshotRepo{snapshot: snapshot}, budgetRepo, txnRepo, seqIDGen{}, nil,
	)

	out, err := uc.Execute(context.Background(), RecordRecurrentPaymentInput{
		UserID:      userID,
		WalletID:    snapshot.Wallet.ID,
		Category:    "Arriendo",
		PeriodKey:   "2026-01",
		Amount:      decimal.NewFromInt(450000),
		PaymentType: entity.TransactionTypeExpenseDebit,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payment, ok := out.Budget.Payments["2026-01"]
	if !ok {
		t.Fatal("expected a ledger entry for 2026-01")
	}
	if !payment.Amount.Equal(decimal.NewFromInt(450000)) {
		t.Errorf("expected ledger amount 450000, got %s", payment.Amount)
	}

	if len(txnRepo.created) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txnRepo.created))
	}
	txn := txnRepo.created[0]
	if !txn.IsRecurrentPayment || txn.PeriodKey != "2026-01" {
		t.Error("expected the transaction tagged as a recurrent payment")
	}
	if txn.Category != "Arriendo" || txn.Type != entity.TransactionTypeExpenseDebit {
		t.Errorf("unexpected transaction %s/%s", txn.Category, txn.Type)
	}

	// The snapshot's budget stays untouched; the write works on a copy.
	original, _ := snapshot.FindBudget("Arriendo")
	if len(original.Payments) != 0 {
		t.Error("snapshot must not be mutated")
	}
}

func TestRecordRecurrentPayment_VariableCategoryRefused(t *testing.T) {
	userID := uuid.New()
	snapshot := recurrentFixture(userID)

	uc := NewRecordRecurrentPaymentUseCase(
		&snapshotRepo{snapshot: snapshot}, &recordingBudgetRepo{}, &recordingTxnRepo{}, seqIDGen{}, nil,
	)

	_, err := uc.Execute(context.Background(), RecordRecurrentPaymentInput{
		UserID:    userID,
		WalletID:  snapshot.Wallet.ID,
		Category:  "Entretenimiento",
		PeriodKey: "2026-01",
		Amount:    decimal.NewFromInt(10000),
	})

	if !errors.Is(err, domainerror.ErrNotRecurrent) {
		t.Fatalf("expected ErrNotRecurrent, got %v", err)
	}
}

func TestRecordRecurrentPayment_CreditWithoutCardRefused(t *testing.T) {
	userID := uuid.New()
	snapshot := recurrentFixture(userID)

	uc := NewRecordRecurrentPaymentUseCase(
		&snapshotRepo{snapshot: snapshot}, &recordingBudgetRepo{}, &recordingTxnRepo{}, seqIDGen{}, nil,
	)

	_, err := uc.Execute(context.Background(), RecordRecurrentPaymentInput{
		UserID:      userID,
		WalletID:    snapshot.Wallet.ID,
		Category:    "Arriendo",
		PeriodKey:   "2026-01",
		Amount:      decimal.NewFromInt(450000),
		PaymentType: entity.TransactionTypeExpenseCredit,
	})

	if !errors.Is(err, domainerror.ErrCardRequired) {
		t.Fatalf("expected ErrCardRequired, got %v", err)
	}
}

func TestUpsertBudget_Validation(t *testing.T) {
	userID := uuid.New()
	snapshot := recurrentFixture(userID)
	total := decimal.NewFromInt(100000)

	tests := []struct {
		name    string
		input   UpsertBudgetInput
		wantErr error
	}{
		{
			name:    "empty category",
			input:   UpsertBudgetInput{Category: "  ", Type: entity.BudgetTypeVariable},
			wantErr: domainerror.ErrBudgetCategoryRequired,
		},
		{
			name:    "reserved income category",
			input:   UpsertBudgetInput{Category: entity.CategoryIncome, Type: entity.BudgetTypeVariable},
			wantErr: domainerror.ErrReservedCategory,
		},
		{
			name:    "reserved debt category",
			input:   UpsertBudgetInput{Category: entity.CategoryDebtPayment, Type: entity.BudgetTypeVariable},
			wantErr: domainerror.ErrReservedCategory,
		},
		{
			name:    "unknown type",
			input:   UpsertBudgetInput{Category: "Supermercado", Type: entity.BudgetType("weekly")},
			wantErr: domainerror.ErrInvalidBudgetType,
		},
		{
			name: "explicit total with subcategories",
			input: UpsertBudgetInput{
				Category:      "Servicios",
				Type:          entity.BudgetTypeRecurrent,
				Total:         &total,
				Subcategories: map[string]decimal.Decimal{"Luz": decimal.NewFromInt(20000)},
			},
			wantErr: domainerror.ErrDerivedTotal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			input.UserID = userID
			input.WalletID = snapshot.Wallet.ID

			uc := NewUpsertBudgetUseCase(
				&snapshotRepo{snapshot: snapshot}, &recordingBudgetRepo{}, seqIDGen{}, nil,
			)

			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUpsertBudget_KeepsExistingLedger(t *testing.T) {
	userID := uuid.New()
	snapshot := recurrentFixture(userID)

	existingTotal := decimal.NewFromInt(400000)
	existing := &entity.Budget{
		ID:       uuid.New(),
		WalletID: snapshot.Wallet.ID,
		Category: "Arriendo",
		Type:     entity.BudgetTypeRecurrent,
		Total:    &existingTotal,
		Payments: map[string]entity.BudgetPayment{
			"2025-12": {Amount: decimal.NewFromInt(400000), PaymentType: entity.TransactionTypeExpenseDebit},
		},
	}
	budgetRepo := &recordingBudgetRepo{existing: existing}

	newTotal := decimal.NewFromInt(450000)
	uc := NewUpsertBudgetUseCase(&snapshotRepo{snapshot: snapshot}, budgetRepo, seqIDGen{}, nil)

	out, err := uc.Execute(context.Background(), UpsertBudgetInput{
		UserID:   userID,
		WalletID: snapshot.Wallet.ID,
		Category: "Arriendo",
		Type:     entity.BudgetTypeRecurrent,
		Total:    &newTotal,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Budget.ID != existing.ID {
		t.Error("expected the existing budget replaced in place")
	}
	if _, ok := out.Budget.Payments["2025-12"]; !ok {
		t.Error("expected the payments ledger preserved across upserts")
	}
	if !out.Budget.Total.Equal(newTotal) {
		t.Errorf("expected new total 450000, got %s", out.Budget.Total)
	}
}
