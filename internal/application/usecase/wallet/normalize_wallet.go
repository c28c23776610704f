package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// NormalizeWalletInput represents the input for wallet normalization.
type NormalizeWalletInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
}

// NormalizeWalletOutput reports what the normalization changed.
type NormalizeWalletOutput struct {
	Snapshot *entity.WalletSnapshot
	Changed  bool
}

// NormalizeWalletUseCase runs the idempotent load-time migration over a
// wallet aggregate: data written by older app versions is brought to the
// current shape. Running it twice is a no-op the second time.
type NormalizeWalletUseCase struct {
	walletRepo      adapter.WalletRepository
	installmentRepo adapter.InstallmentRepository
	cache           adapter.DashboardCache // optional
}

// NewNormalizeWalletUseCase creates a new NormalizeWalletUseCase instance.
func NewNormalizeWalletUseCase(
	walletRepo adapter.WalletRepository,
	installmentRepo adapter.InstallmentRepository,
	cache adapter.DashboardCache,
) *NormalizeWalletUseCase {
	return &NormalizeWalletUseCase{
		walletRepo:      walletRepo,
		installmentRepo: installmentRepo,
		cache:           cache,
	}
}

// Execute normalizes the wallet aggregate and persists whatever changed.
func (uc *NormalizeWalletUseCase) Execute(ctx context.Context, input NormalizeWalletInput) (*NormalizeWalletOutput, error) {
	snapshot, err := uc.walletRepo.GetSnapshot(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet snapshot: %w", err)
	}
	if snapshot.Wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	normalized, changed := NormalizeSnapshot(snapshot)
	if !changed {
		return &NormalizeWalletOutput{Snapshot: normalized, Changed: false}, nil
	}

	if err := uc.walletRepo.Update(ctx, normalized.Wallet); err != nil {
		return nil, fmt.Errorf("failed to persist normalized wallet: %w", err)
	}
	for _, installment := range normalized.Installments {
		if err := uc.installmentRepo.Update(ctx, installment); err != nil {
			return nil, fmt.Errorf("failed to persist normalized installment: %w", err)
		}
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return &NormalizeWalletOutput{Snapshot: normalized, Changed: true}, nil
}

// NormalizeSnapshot returns a normalized copy of the snapshot and whether
// anything differed. The input is not mutated. Applied migrations:
//   - empty category layouts get the defaults, and the reserved categories
//     are inserted when missing
//   - legacy unpadded period keys ("2024-3") are rewritten canonically in
//     every per-period map
//   - PaidInstallments is clamped into [0, TotalInstallments]
func NormalizeSnapshot(snapshot *entity.WalletSnapshot) (*entity.WalletSnapshot, bool) {
	normalized := snapshot.Clone()
	changed := false

	w := normalized.Wallet
	if len(w.TransactionCategories) == 0 {
		w.TransactionCategories = entity.DefaultTransactionCategories()
		changed = true
	} else {
		if _, ok := w.TransactionCategories[entity.CategoryIncome]; !ok {
			w.TransactionCategories[entity.CategoryIncome] = nil
			changed = true
		}
		if _, ok := w.TransactionCategories[entity.CategoryDebtPayment]; !ok {
			w.TransactionCategories[entity.CategoryDebtPayment] = nil
			changed = true
		}
	}

	if surplus, rewrote := canonicalizeSurplusKeys(w.ManualSurplus); rewrote {
		w.ManualSurplus = surplus
		changed = true
	}

	for _, installment := range normalized.Installments {
		if installment.PaidInstallments < 0 {
			installment.PaidInstallments = 0
			changed = true
		}
		if installment.PaidInstallments > installment.TotalInstallments {
			installment.PaidInstallments = installment.TotalInstallments
			changed = true
		}
		if history, rewrote := canonicalizePaymentKeys(installment.PaymentHistory); rewrote {
			installment.PaymentHistory = history
			changed = true
		}
	}

	for _, income := range normalized.FixedIncomes {
		if payments, rewrote := canonicalizeIncomeKeys(income.Payments); rewrote {
			income.Payments = payments
			changed = true
		}
	}

	for _, budget := range normalized.Budgets {
		if payments, rewrote := canonicalizeBudgetKeys(budget.Payments); rewrote {
			budget.Payments = payments
			changed = true
		}
	}

	return normalized, changed
}

func canonicalizeSurplusKeys(m map[string]decimal.Decimal) (map[string]decimal.Decimal, bool) {
	rewrote := false
	out := make(map[string]decimal.Decimal, len(m))
	for key, value := range m {
		canonical, ok := canonicalKey(key)
		if !ok {
			canonical = key
		} else if canonical != key {
			rewrote = true
		}
		out[canonical] = value
	}
	if !rewrote {
		return m, false
	}
	return out, true
}

func canonicalizePaymentKeys(m map[string]entity.InstallmentPayment) (map[string]entity.InstallmentPayment, bool) {
	rewrote := false
	out := make(map[string]entity.InstallmentPayment, len(m))
	for key, value := range m {
		canonical, ok := canonicalKey(key)
		if !ok {
			canonical = key
		} else if canonical != key {
			rewrote = true
		}
		out[canonical] = value
	}
	if !rewrote {
		return m, false
	}
	return out, true
}

func canonicalizeIncomeKeys(m map[string]entity.FixedIncomePayment) (map[string]entity.FixedIncomePayment, bool) {
	rewrote := false
	out := make(map[string]entity.FixedIncomePayment, len(m))
	for key, value := range m {
		canonical, ok := canonicalKey(key)
		if !ok {
			canonical = key
		} else if canonical != key {
			rewrote = true
		}
		out[canonical] = value
	}
	if !rewrote {
		return m, false
	}
	return out, true
}

func canonicalizeBudgetKeys(m map[string]entity.BudgetPayment) (map[string]entity.BudgetPayment, bool) {
	rewrote := false
	out := make(map[string]entity.BudgetPayment, len(m))
	for key, value := range m {
		canonical, ok := canonicalKey(key)
		if !ok {
			canonical = key
		} else if canonical != key {
			rewrote = true
		}
		out[canonical] = value
	}
	if !rewrote {
		return m, false
	}
	return out, true
}

// canonicalKey re-serializes a period key into the canonical zero-padded
// form. Unparseable keys are reported as-is so foreign data survives.
func canonicalKey(key string) (string, bool) {
	period, err := entity.ParsePeriodKey(key)
	if err != nil {
		return key, false
	}
	return period.Key(), true
}
