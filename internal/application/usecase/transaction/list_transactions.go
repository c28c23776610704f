package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
// Year and Month are optional together; when set, only that period is returned.
type ListTransactionsInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
	Year     int
	Month    time.Month
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	walletRepo      adapter.WalletRepository
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	walletRepo adapter.WalletRepository,
	transactionRepo adapter.TransactionRepository,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the wallet's transactions, oldest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	found, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	if found == nil || found.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	if input.Year == 0 {
		transactions, listErr := uc.transactionRepo.FindByWallet(ctx, input.WalletID)
		if listErr != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", listErr)
		}
		return &ListTransactionsOutput{Transactions: transactions}, nil
	}

	period := entity.Period{Year: input.Year, Month: input.Month}
	if !period.IsValid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			fmt.Sprintf("month %d is out of range", input.Month),
			domainerror.ErrInvalidMonth,
		)
	}

	transactions, err := uc.transactionRepo.FindByWalletAndDateRange(ctx, input.WalletID, period.Start(), period.End())
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
