package dto

import (
	"time"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// CreateWalletRequest represents the request body for wallet creation.
type CreateWalletRequest struct {
	Name       string              `json:"name" binding:"required,min=1,max=100"`
	Categories map[string][]string `json:"categories,omitempty"`
}

// UpdateWalletRequest represents the request body for wallet update.
// Absent fields are left untouched.
type UpdateWalletRequest struct {
	Name                  *string             `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TransactionCategories map[string][]string `json:"transaction_categories,omitempty"`
	BankDebitBalance      *string             `json:"bank_debit_balance,omitempty"`
	SurplusPeriodKey      string              `json:"surplus_period_key,omitempty"`
	SurplusAmount         *string             `json:"surplus_amount,omitempty"`
}

// WalletResponse represents a wallet in API responses.
type WalletResponse struct {
	ID                    string              `json:"id"`
	Name                  string              `json:"name"`
	BankDebitBalance      string              `json:"bank_debit_balance"`
	BankCreditBalance     string              `json:"bank_credit_balance"`
	ManualSurplus         map[string]string   `json:"manual_surplus"`
	TransactionCategories map[string][]string `json:"transaction_categories"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// NormalizeWalletResponse reports the outcome of a normalization pass.
type NormalizeWalletResponse struct {
	Changed bool           `json:"changed"`
	Wallet  WalletResponse `json:"wallet"`
}

// WalletListResponse represents the wallet collection in API responses.
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// ToWalletResponse converts a domain Wallet entity to a WalletResponse DTO.
func ToWalletResponse(wallet *entity.Wallet) WalletResponse {
	surplus := make(map[string]string, len(wallet.ManualSurplus))
	for key, amount := range wallet.ManualSurplus {
		surplus[key] = amount.String()
	}

	return WalletResponse{
		ID:                    wallet.ID.String(),
		Name:                  wallet.Name,
		BankDebitBalance:      wallet.BankDebitBalance.String(),
		BankCreditBalance:     wallet.BankCreditBalance.String(),
		ManualSurplus:         surplus,
		TransactionCategories: wallet.TransactionCategories,
		CreatedAt:             wallet.CreatedAt,
		UpdatedAt:             wallet.UpdatedAt,
	}
}

// ToWalletListResponse converts a wallet slice to a WalletListResponse DTO.
func ToWalletListResponse(wallets []*entity.Wallet) WalletListResponse {
	responses := make([]WalletResponse, len(wallets))
	for i, wallet := range wallets {
		responses[i] = ToWalletResponse(wallet)
	}
	return WalletListResponse{Wallets: responses}
}
