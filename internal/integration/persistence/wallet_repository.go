// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
	"github.com/wallet-tracker/backend/internal/integration/persistence/model"
)

// walletRepository implements the adapter.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository instance.
func NewWalletRepository(db *gorm.DB) adapter.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// Create creates a new wallet.
func (r *walletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.WalletModelFromEntity(wallet)
	if result := r.db.WithContext(ctx).Create(walletModel); result.Error != nil {
		return fmt.Errorf("failed to create wallet: %w", result.Error)
	}
	return nil
}

// FindByID retrieves a wallet by its ID.
func (r *walletRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error) {
	var walletModel model.WalletModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&walletModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to find wallet: %w", result.Error)
	}
	return walletModel.ToEntity(), nil
}

// FindByUserID retrieves all wallets owned by a user.
func (r *walletRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	var models []model.WalletModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find wallets: %w", result.Error)
	}

	wallets := make([]*entity.Wallet, len(models))
	for i, m := range models {
		wallets[i] = m.ToEntity()
	}
	return wallets, nil
}

// CountByUserID counts the wallets owned by a user.
func (r *walletRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.WalletModel{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count wallets: %w", result.Error)
	}
	return count, nil
}

// Update updates an existing wallet.
func (r *walletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.WalletModelFromEntity(wallet)
	if result := r.db.WithContext(ctx).Save(walletModel); result.Error != nil {
		return fmt.Errorf("failed to update wallet: %w", result.Error)
	}
	return nil
}

// Delete removes a wallet and everything it owns in a single transaction.
func (r *walletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&model.TransactionModel{},
			&model.BudgetModel{},
			&model.FixedIncomeModel{},
			&model.InstallmentModel{},
			&model.CreditCardModel{},
		}
		for _, m := range owned {
			if result := tx.Where("wallet_id = ?", id).Delete(m); result.Error != nil {
				return result.Error
			}
		}

		result := tx.Where("id = ?", id).Delete(&model.WalletModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrWalletNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrWalletNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	return nil
}

// GetSnapshot loads the wallet together with all of its owned collections.
func (r *walletRepository) GetSnapshot(ctx context.Context, id uuid.UUID) (*entity.WalletSnapshot, error) {
	wallet, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("wallet_id = ?", id).
		Order("date ASC, created_at ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", result.Error)
	}

	var budgetModels []model.BudgetModel
	if result := r.db.WithContext(ctx).Where("wallet_id = ?", id).Order("category ASC").Find(&budgetModels); result.Error != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", result.Error)
	}

	var incomeModels []model.FixedIncomeModel
	if result := r.db.WithContext(ctx).Where("wallet_id = ?", id).Order("created_at ASC").Find(&incomeModels); result.Error != nil {
		return nil, fmt.Errorf("failed to load fixed incomes: %w", result.Error)
	}

	var installmentModels []model.InstallmentModel
	if result := r.db.WithContext(ctx).Where("wallet_id = ?", id).Order("created_at ASC").Find(&installmentModels); result.Error != nil {
		return nil, fmt.Errorf("failed to load installments: %w", result.Error)
	}

	var cardModels []model.CreditCardModel
	if result := r.db.WithContext(ctx).Where("wallet_id = ?", id).Order("created_at ASC").Find(&cardModels); result.Error != nil {
		return nil, fmt.Errorf("failed to load credit cards: %w", result.Error)
	}

	snapshot := &entity.WalletSnapshot{
		Wallet:       wallet,
		Transactions: make([]*entity.Transaction, len(transactionModels)),
		Budgets:      make([]*entity.Budget, len(budgetModels)),
		FixedIncomes: make([]*entity.FixedIncome, len(incomeModels)),
		Installments: make([]*entity.Installment, len(installmentModels)),
		CreditCards:  make([]*entity.CreditCard, len(cardModels)),
	}
	for i, m := range transactionModels {
		snapshot.Transactions[i] = m.ToEntity()
	}
	for i, m := range budgetModels {
		snapshot.Budgets[i] = m.ToEntity()
	}
	for i, m := range incomeModels {
		snapshot.FixedIncomes[i] = m.ToEntity()
	}
	for i, m := range installmentModels {
		snapshot.Installments[i] = m.ToEntity()
	}
	for i, m := range cardModels {
		snapshot.CreditCards[i] = m.ToEntity()
	}
	return snapshot, nil
}
