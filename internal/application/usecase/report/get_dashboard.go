package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// GetDashboardInput represents the input for computing a dashboard.
type GetDashboardInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
	Year     int
	Month    time.Month
}

// GetDashboardUseCase loads a wallet snapshot and derives the full dashboard.
type GetDashboardUseCase struct {
	walletRepo adapter.WalletRepository
	cache      adapter.DashboardCache // optional
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
// The cache may be nil; results are then recomputed on every call.
func NewGetDashboardUseCase(walletRepo adapter.WalletRepository, cache adapter.DashboardCache) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		walletRepo: walletRepo,
		cache:      cache,
	}
}

// Execute computes the dashboard for the wallet and period.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*DashboardOutput, error) {
	if err := validateInput(input.Year, input.Month); err != nil {
		return nil, err
	}

	snapshot, err := uc.walletRepo.GetSnapshot(ctx, input.WalletID)
	if err != nil {
		return nil, err
	}
	if snapshot.Wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	period := periodOf(input.Year, input.Month)

	if uc.cache != nil {
		if payload, ok, cacheErr := uc.cache.Get(ctx, input.WalletID, period.Key()); cacheErr == nil && ok {
			var cached DashboardOutput
			if unmarshalErr := json.Unmarshal(payload, &cached); unmarshalErr == nil {
				return &cached, nil
			}
		}
	}

	output := BuildDashboard(snapshot, period)

	if uc.cache != nil {
		if payload, marshalErr := json.Marshal(output); marshalErr == nil {
			if cacheErr := uc.cache.Set(ctx, input.WalletID, period.Key(), payload); cacheErr != nil {
				slog.Warn("Failed to cache dashboard", "wallet_id", input.WalletID, "error", cacheErr)
			}
		}
	}

	return output, nil
}

func validateInput(year int, month time.Month) error {
	if year <= 0 {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingYear,
			"year is required",
			domainerror.ErrMissingYear,
		)
	}
	if !validatePeriod(year, month) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			fmt.Sprintf("month %d is out of range", month),
			domainerror.ErrInvalidMonth,
		)
	}
	return nil
}
