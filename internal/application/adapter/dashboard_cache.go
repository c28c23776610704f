package adapter

import (
	"context"

	"github.com/google/uuid"
)

// DashboardCache caches serialized dashboard results per wallet and period.
// Implementations are free to evict at will; a miss simply recomputes.
type DashboardCache interface {
	// Get returns the cached payload for the wallet and period key, if any.
	Get(ctx context.Context, walletID uuid.UUID, periodKey string) ([]byte, bool, error)

	// Set stores the payload for the wallet and period key.
	Set(ctx context.Context, walletID uuid.UUID, periodKey string, payload []byte) error

	// InvalidateWallet drops every cached period of the wallet. Called after
	// any write that changes derived figures.
	InvalidateWallet(ctx context.Context, walletID uuid.UUID) error
}
