package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByWallet retrieves all transactions of a wallet, oldest first.
	FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.Transaction, error)

	// FindByWalletAndDateRange retrieves the wallet's transactions whose date
	// falls inside [start, end], oldest first.
	FindByWalletAndDateRange(ctx context.Context, walletID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
