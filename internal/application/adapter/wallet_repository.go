// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// WalletRepository defines the interface for wallet persistence operations.
type WalletRepository interface {
	// Create creates a new wallet.
	Create(ctx context.Context, wallet *entity.Wallet) error

	// FindByID retrieves a wallet by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error)

	// FindByUserID retrieves all wallets owned by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error)

	// CountByUserID counts the wallets owned by a user.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// Update updates an existing wallet.
	Update(ctx context.Context, wallet *entity.Wallet) error

	// Delete removes a wallet and everything it owns.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetSnapshot loads the wallet together with all of its owned collections.
	GetSnapshot(ctx context.Context, id uuid.UUID) (*entity.WalletSnapshot, error)
}
