// Package cache implements Redis-backed caching for derived dashboard data.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wallet-tracker/backend/internal/application/adapter"
)

// DefaultDashboardTTL bounds staleness when an invalidation is missed.
const DefaultDashboardTTL = 15 * time.Minute

// dashboardCache implements the adapter.DashboardCache interface.
type dashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache creates a new Redis-backed dashboard cache.
func NewDashboardCache(client *redis.Client, ttl time.Duration) adapter.DashboardCache {
	if ttl <= 0 {
		ttl = DefaultDashboardTTL
	}
	return &dashboardCache{
		client: client,
		ttl:    ttl,
	}
}

func dashboardKey(walletID uuid.UUID, periodKey string) string {
	return fmt.Sprintf("dashboard:%s:%s", walletID, periodKey)
}

// Get returns the cached payload for the wallet and period key, if any.
func (c *dashboardCache) Get(ctx context.Context, walletID uuid.UUID, periodKey string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, dashboardKey(walletID, periodKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read dashboard cache: %w", err)
	}
	return payload, true, nil
}

// Set stores the payload for the wallet and period key.
func (c *dashboardCache) Set(ctx context.Context, walletID uuid.UUID, periodKey string, payload []byte) error {
	err := c.client.Set(ctx, dashboardKey(walletID, periodKey), payload, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to write dashboard cache: %w", err)
	}
	return nil
}

// InvalidateWallet drops every cached period of the wallet.
func (c *dashboardCache) InvalidateWallet(ctx context.Context, walletID uuid.UUID) error {
	pattern := fmt.Sprintf("dashboard:%s:*", walletID)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan dashboard cache keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate dashboard cache: %w", err)
	}
	return nil
}
