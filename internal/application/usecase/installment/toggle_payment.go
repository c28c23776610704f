package installment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/application/usecase/report"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// TogglePaymentInput represents the input for toggling a period's payment.
type TogglePaymentInput struct {
	UserID        uuid.UUID
	WalletID      uuid.UUID
	InstallmentID uuid.UUID
	PeriodKey     string
}

// TogglePaymentOutput represents the output of toggling a payment.
type TogglePaymentOutput struct {
	Installment *entity.Installment
}

// TogglePaymentUseCase flips the paid state of one period's installment due.
// Entries created by a card bill payment are locked: they carry the paying
// transaction's ID and can only be reversed by deleting that transaction.
type TogglePaymentUseCase struct {
	walletRepo      adapter.WalletRepository
	installmentRepo adapter.InstallmentRepository
	cache           adapter.DashboardCache // optional
}

// NewTogglePaymentUseCase creates a new TogglePaymentUseCase instance.
func NewTogglePaymentUseCase(
	walletRepo adapter.WalletRepository,
	installmentRepo adapter.InstallmentRepository,
	cache adapter.DashboardCache,
) *TogglePaymentUseCase {
	return &TogglePaymentUseCase{
		walletRepo:      walletRepo,
		installmentRepo: installmentRepo,
		cache:           cache,
	}
}

// Execute toggles the payment and persists the updated installment.
func (uc *TogglePaymentUseCase) Execute(ctx context.Context, input TogglePaymentInput) (*TogglePaymentOutput, error) {
	period, err := entity.ParsePeriodKey(input.PeriodKey)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriodKey,
			fmt.Sprintf("invalid period key %q", input.PeriodKey),
			domainerror.ErrInvalidPeriodKey,
		)
	}

	snapshot, err := uc.walletRepo.GetSnapshot(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet snapshot: %w", err)
	}
	if snapshot.Wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	found, ok := snapshot.FindInstallment(input.InstallmentID)
	if !ok {
		return nil, domainerror.ErrInstallmentNotFound
	}

	updated, err := PlanTogglePayment(found, period.Key())
	if err != nil {
		return nil, err
	}

	if err := uc.installmentRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update installment: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return &TogglePaymentOutput{Installment: updated}, nil
}

// PlanTogglePayment computes the toggled installment without mutating the
// input. The paid counter always stays within [0, TotalInstallments] and a
// transaction-locked entry is never toggled.
func PlanTogglePayment(installment *entity.Installment, periodKey string) (*entity.Installment, error) {
	updated := installment.Clone()
	if updated.PaymentHistory == nil {
		updated.PaymentHistory = make(map[string]entity.InstallmentPayment)
	}

	entry, exists := updated.PaymentHistory[periodKey]
	if exists && entry.Paid {
		if entry.TransactionID != nil {
			return nil, domainerror.NewInstallmentError(
				domainerror.ErrCodePaymentLocked,
				"payment is linked to a transaction and cannot be toggled manually",
				domainerror.ErrPaymentLocked,
			)
		}
		if updated.PaidInstallments <= 0 {
			return nil, domainerror.NewInstallmentError(
				domainerror.ErrCodeNoPaidInstallments,
				"no paid installments to reverse",
				domainerror.ErrNoPaidInstallments,
			)
		}
		delete(updated.PaymentHistory, periodKey)
		updated.PaidInstallments--
		return updated, nil
	}

	if updated.PaidInstallments >= updated.TotalInstallments {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeAllInstallmentsPaid,
			"all installments are already paid",
			domainerror.ErrAllInstallmentsPaid,
		)
	}

	updated.PaymentHistory[periodKey] = entity.InstallmentPayment{
		Amount: report.ComputeInstallmentState(updated).MonthlyPayment,
		Paid:   true,
	}
	updated.PaidInstallments++

	return updated, nil
}
