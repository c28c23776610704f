package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// BudgetRepository defines persistence operations for budget categories.
type BudgetRepository interface {
	// Upsert creates the budget or replaces the existing one for its category.
	Upsert(ctx context.Context, budget *entity.Budget) error

	// FindByWallet retrieves all budgets of a wallet.
	FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.Budget, error)

	// FindByWalletAndCategory retrieves the budget for one category.
	FindByWalletAndCategory(ctx context.Context, walletID uuid.UUID, category string) (*entity.Budget, error)

	// Delete removes the budget for a category.
	Delete(ctx context.Context, id uuid.UUID) error
}

// FixedIncomeRepository defines persistence operations for fixed incomes.
type FixedIncomeRepository interface {
	Create(ctx context.Context, income *entity.FixedIncome) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedIncome, error)
	FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.FixedIncome, error)
	Update(ctx context.Context, income *entity.FixedIncome) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InstallmentRepository defines persistence operations for installments.
type InstallmentRepository interface {
	Create(ctx context.Context, installment *entity.Installment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Installment, error)
	FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.Installment, error)
	Update(ctx context.Context, installment *entity.Installment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreditCardRepository defines persistence operations for credit cards.
type CreditCardRepository interface {
	Create(ctx context.Context, card *entity.CreditCard) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error)
	FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.CreditCard, error)
	Update(ctx context.Context, card *entity.CreditCard) error
	Delete(ctx context.Context, id uuid.UUID) error
}
