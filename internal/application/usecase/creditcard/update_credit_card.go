package creditcard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// UpdateCreditCardInput represents the input for updating a credit card.
// Nil fields are left unchanged.
type UpdateCreditCardInput struct {
	UserID   uuid.UUID
	WalletID uuid.UUID
	CardID   uuid.UUID

	Name  *string
	Limit *decimal.Decimal

	// BankAvailable sets the bank-reported available credit used as the
	// reconciliation baseline.
	BankAvailable *decimal.Decimal
}

// UpdateCreditCardOutput represents the output of updating a credit card.
type UpdateCreditCardOutput struct {
	CreditCard *entity.CreditCard
}

// UpdateCreditCardUseCase handles credit card update logic, including the
// SetBankAvailable baseline write.
type UpdateCreditCardUseCase struct {
	walletRepo adapter.WalletRepository
	cardRepo   adapter.CreditCardRepository
	cache      adapter.DashboardCache // optional
}

// NewUpdateCreditCardUseCase creates a new UpdateCreditCardUseCase instance.
func NewUpdateCreditCardUseCase(
	walletRepo adapter.WalletRepository,
	cardRepo adapter.CreditCardRepository,
	cache adapter.DashboardCache,
) *UpdateCreditCardUseCase {
	return &UpdateCreditCardUseCase{
		walletRepo: walletRepo,
		cardRepo:   cardRepo,
		cache:      cache,
	}
}

// Execute applies the requested changes to the card.
func (uc *UpdateCreditCardUseCase) Execute(ctx context.Context, input UpdateCreditCardInput) (*UpdateCreditCardOutput, error) {
	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	if wallet == nil || wallet.UserID != input.UserID {
		return nil, domainerror.ErrWalletNotFound
	}

	found, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load credit card: %w", err)
	}
	if found == nil || found.WalletID != input.WalletID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCardNotFound,
			"credit card not found in wallet",
			domainerror.ErrCardNotFound,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != "" {
			found.Name = name
		}
	}
	if input.Limit != nil {
		found.Limit = *input.Limit
	}
	if input.BankAvailable != nil {
		found.BankAvailable = *input.BankAvailable
	}
	found.UpdatedAt = time.Now().UTC()

	if err := uc.cardRepo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("failed to update credit card: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.WalletID)

	return &UpdateCreditCardOutput{CreditCard: found}, nil
}

// SetBankAvailable is a convenience wrapper that only writes the baseline.
func (uc *UpdateCreditCardUseCase) SetBankAvailable(ctx context.Context, userID, walletID, cardID uuid.UUID, available decimal.Decimal) (*entity.CreditCard, error) {
	out, err := uc.Execute(ctx, UpdateCreditCardInput{
		UserID:        userID,
		WalletID:      walletID,
		CardID:        cardID,
		BankAvailable: &available,
	})
	if err != nil {
		return nil, err
	}
	return out.CreditCard, nil
}
