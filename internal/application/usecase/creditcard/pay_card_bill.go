package creditcard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/application/usecase/report"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// PayCardBillInput represents the input for paying a card's monthly bill.
type PayCardBillInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
	CardID   uuid.UUID

	Date   time.Time
	Amount decimal.Decimal

	// InstallmentIDs selects the installments this payment advances one
	// period each. Their history entries are locked to the transaction.
	InstallmentIDs []uuid.UUID
}

// PayCardBillOutput represents the output of paying a card bill.
type PayCardBillOutput struct {
	Transaction  *entity.Transaction
	Installments []*entity.Installment
}

// BillPlan is the pure outcome of a bill payment: the debt-payment
// transaction and the advanced installments.
type BillPlan struct {
	Transaction  *entity.Transaction
	Installments []*entity.Installment
}

// PayCardBillUseCase settles a credit card's monthly bill. The payment is a
// real debit outflow in the reserved debt-payment category, so it appears in
// totals without inflating any budget category.
type PayCardBillUseCase struct {
	walletRepo      adapter.WalletRepository
	transactionRepo adapter.TransactionRepository
	installmentRepo adapter.InstallmentRepository
	idGen           adapter.IDGenerator
	cache           adapter.DashboardCache // optional
}

// NewPayCardBillUseCase creates a new PayCardBillUseCase instance.
func NewPayCardBillUseCase(
	walletRepo adapter.WalletRepository,
	transactionRepo adapter.TransactionRepository,
	installmentRepo adapter.InstallmentRepository,
	idGen adapter.IDGenerator,
	cache adapter.DashboardCache,
) *PayCardBillUseCase {
	return &PayCardBillUseCase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		installmentRepo: installmentRepo,
		idGen:           idGen,
		cache:           cache,
	}
}

// Execute validates the payment, persists the transaction and advances the
// selected installments.
func (uc *PayCardBillUseCase) Execute(ctx context.Context, input PayCardBillInput) (*PayCardBillOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount must be non-negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if input.Date.IsZero() {
		input.Date = time.Now().UTC()
	}

	snapshot, err := uc.walletRepo.GetSnapshot(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet snapshot: %w", err)
	}
	if snapshot.Wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	plan, err := PlanPayCardBill(snapshot, input, uc.idGen.NewID())
	if err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, plan.Transaction); err != nil {
		return nil, fmt.Errorf("failed to create bill payment: %w", err)
	}
	for _, installment := range plan.Installments {
		if err := uc.installmentRepo.Update(ctx, installment); err != nil {
			return nil, fmt.Errorf("failed to advance installment: %w", err)
		}
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return &PayCardBillOutput{Transaction: plan.Transaction, Installments: plan.Installments}, nil
}

// PlanPayCardBill computes the bill payment without touching the snapshot.
// Each selected installment gains a locked history entry for the payment's
// period and an advanced counter; already settled or paid-off selections are
// refused so a bill never double-advances.
func PlanPayCardBill(snapshot *entity.WalletSnapshot, input PayCardBillInput, transactionID uuid.UUID) (BillPlan, error) {
	card, ok := snapshot.FindCard(input.CardID)
	if !ok {
		return BillPlan{}, domainerror.NewTransactionError(
			domainerror.ErrCodeCardNotFound,
			"credit card not found in wallet",
			domainerror.ErrCardNotFound,
		)
	}

	period := entity.Period{Year: input.Date.Year(), Month: input.Date.Month()}
	periodKey := period.Key()

	cardID := card.ID
	txn := entity.NewTransaction(
		transactionID,
		input.WalletID,
		input.Date,
		fmt.Sprintf("Pago tarjeta %s", card.Name),
		input.Amount,
		entity.TransactionTypeExpenseDebit,
		entity.CategoryDebtPayment,
		nil,
		&cardID,
	)
	txn.PeriodKey = periodKey

	plan := BillPlan{Transaction: txn}
	portion := decimal.Zero

	for _, installmentID := range input.InstallmentIDs {
		installment, ok := snapshot.FindInstallment(installmentID)
		if !ok {
			return BillPlan{}, domainerror.ErrInstallmentNotFound
		}
		if report.ComputeInstallmentState(installment).IsPaidOff {
			return BillPlan{}, domainerror.NewInstallmentError(
				domainerror.ErrCodeAllInstallmentsPaid,
				fmt.Sprintf("installment %q is already paid off", installment.Description),
				domainerror.ErrAllInstallmentsPaid,
			)
		}

		advanced := installment.Clone()
		if advanced.PaymentHistory == nil {
			advanced.PaymentHistory = make(map[string]entity.InstallmentPayment)
		}
		if entry, settled := advanced.PaymentHistory[periodKey]; settled && entry.Paid {
			return BillPlan{}, domainerror.NewInstallmentError(
				domainerror.ErrCodeAllInstallmentsPaid,
				fmt.Sprintf("installment %q is already settled for %s", installment.Description, periodKey),
				domainerror.ErrAllInstallmentsPaid,
			)
		}

		monthly := report.ComputeInstallmentState(advanced).MonthlyPayment
		lockID := transactionID
		advanced.PaymentHistory[periodKey] = entity.InstallmentPayment{
			Amount:        monthly,
			Paid:          true,
			TransactionID: &lockID,
		}
		advanced.PaidInstallments++

		portion = portion.Add(monthly)
		plan.Installments = append(plan.Installments, advanced)
		txn.PaidInstallmentIDs = append(txn.PaidInstallmentIDs, installment.ID)
	}

	if len(plan.Installments) > 0 {
		txn.InstallmentPaymentPortion = &portion
	}

	return plan, nil
}
