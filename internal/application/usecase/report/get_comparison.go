package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// GetComparisonInput represents the input for the month-over-month view.
type GetComparisonInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
	Year     int
	Month    time.Month
}

// GetComparisonOutput represents the month-over-month category deltas.
type GetComparisonOutput struct {
	Period         PeriodInfo           `json:"period"`
	PreviousPeriod PeriodInfo           `json:"previous_period"`
	Categories     []CategoryComparison `json:"categories"`
}

// GetComparisonUseCase compares a period's category spending to the previous one.
type GetComparisonUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewGetComparisonUseCase creates a new GetComparisonUseCase instance.
func NewGetComparisonUseCase(walletRepo adapter.WalletRepository) *GetComparisonUseCase {
	return &GetComparisonUseCase{
		walletRepo: walletRepo,
	}
}

// Execute computes the month-over-month category comparison.
func (uc *GetComparisonUseCase) Execute(ctx context.Context, input GetComparisonInput) (*GetComparisonOutput, error) {
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
	previous := period.Previous()

	current := ExpensesByCategory(SelectPeriod(snapshot.Transactions, period))
	prior := ExpensesByCategory(SelectPeriod(snapshot.Transactions, previous))

	return &GetComparisonOutput{
		Period: PeriodInfo{
			Year:  period.Year,
			Month: int(period.Month),
			Key:   period.Key(),
		},
		PreviousPeriod: PeriodInfo{
			Year:  previous.Year,
			Month: int(previous.Month),
			Key:   previous.Key(),
		},
		Categories: CompareToPreviousMonth(current, prior),
	}, nil
}
