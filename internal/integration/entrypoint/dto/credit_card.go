package dto

import (
	"time"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// CreateCreditCardRequest represents the request body for credit card creation.
type CreateCreditCardRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Limit string `json:"limit" binding:"required"`
}

// UpdateCreditCardRequest represents the request body for credit card update.
type UpdateCreditCardRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Limit         *string `json:"limit,omitempty"`
	BankAvailable *string `json:"bank_available,omitempty"`
}

// PayCardBillRequest represents the request body for paying a card bill.
type PayCardBillRequest struct {
	Date           string   `json:"date" binding:"required"`
	Amount         string   `json:"amount" binding:"required"`
	InstallmentIDs []string `json:"installment_ids,omitempty"`
}

// CreditCardResponse represents a credit card in API responses.
type CreditCardResponse struct {
	ID            string    `json:"id"`
	WalletID      string    `json:"wallet_id"`
	Name          string    `json:"name"`
	Limit         string    `json:"limit"`
	BankAvailable string    `json:"bank_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreditCardListResponse represents the credit card collection in API responses.
type CreditCardListResponse struct {
	CreditCards []CreditCardResponse `json:"credit_cards"`
}

// PayCardBillResponse represents the outcome of paying a card bill.
type PayCardBillResponse struct {
	Transaction  TransactionResponse   `json:"transaction"`
	Installments []InstallmentResponse `json:"installments,omitempty"`
}

// ToCreditCardResponse converts a domain CreditCard entity to a CreditCardResponse DTO.
func ToCreditCardResponse(card *entity.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:            card.ID.String(),
		WalletID:      card.WalletID.String(),
		Name:          card.Name,
		Limit:         card.Limit.String(),
		BankAvailable: card.BankAvailable.String(),
		CreatedAt:     card.CreatedAt,
		UpdatedAt:     card.UpdatedAt,
	}
}

// ToCreditCardListResponse converts a card slice to a CreditCardListResponse DTO.
func ToCreditCardListResponse(cards []*entity.CreditCard) CreditCardListResponse {
	responses := make([]CreditCardResponse, len(cards))
	for i, card := range cards {
		responses[i] = ToCreditCardResponse(card)
	}
	return CreditCardListResponse{CreditCards: responses}
}
