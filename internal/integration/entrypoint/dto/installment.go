package dto

import (
	"time"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// CreateInstallmentRequest represents the request body for installment creation.
type CreateInstallmentRequest struct {
	Description       string  `json:"description" binding:"required,min=1,max=255"`
	TotalAmount       string  `json:"total_amount" binding:"required"`
	TotalInstallments int     `json:"total_installments" binding:"required,min=1"`
	Type              string  `json:"type" binding:"required,oneof=credit_card consumer_loan"`
	CardID            *string `json:"card_id,omitempty"`
}

// UpdateInstallmentRequest represents the request body for installment update.
type UpdateInstallmentRequest struct {
	Description       *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	TotalAmount       *string `json:"total_amount,omitempty"`
	TotalInstallments *int    `json:"total_installments,omitempty" binding:"omitempty,min=1"`
	CardID            *string `json:"card_id,omitempty"`
}

// TogglePaymentRequest represents the request body for toggling a period's due.
type TogglePaymentRequest struct {
	PeriodKey string `json:"period_key" binding:"required"`
}

// InstallmentPaymentResponse represents one settled due in API responses.
type InstallmentPaymentResponse struct {
	Amount        string  `json:"amount"`
	Paid          bool    `json:"paid"`
	TransactionID *string `json:"transaction_id,omitempty"`
}

// InstallmentResponse represents an installment in API responses.
type InstallmentResponse struct {
	ID                string                                `json:"id"`
	WalletID          string                                `json:"wallet_id"`
	Description       string                                `json:"description"`
	TotalAmount       string                                `json:"total_amount"`
	TotalInstallments int                                   `json:"total_installments"`
	PaidInstallments  int                                   `json:"paid_installments"`
	Type              string                                `json:"type"`
	CardID            *string                               `json:"card_id,omitempty"`
	PaymentHistory    map[string]InstallmentPaymentResponse `json:"payment_history,omitempty"`
	CreatedAt         time.Time                             `json:"created_at"`
	UpdatedAt         time.Time                             `json:"updated_at"`
}

// InstallmentListResponse represents the installment collection in API responses.
type InstallmentListResponse struct {
	Installments []InstallmentResponse `json:"installments"`
}

// ToInstallmentResponse converts a domain Installment entity to an InstallmentResponse DTO.
func ToInstallmentResponse(installment *entity.Installment) InstallmentResponse {
	response := InstallmentResponse{
		ID:                installment.ID.String(),
		WalletID:          installment.WalletID.String(),
		Description:       installment.Description,
		TotalAmount:       installment.TotalAmount.String(),
		TotalInstallments: installment.TotalInstallments,
		PaidInstallments:  installment.PaidInstallments,
		Type:              string(installment.Type),
		CreatedAt:         installment.CreatedAt,
		UpdatedAt:         installment.UpdatedAt,
	}

	if installment.CardID != nil {
		cardID := installment.CardID.String()
		response.CardID = &cardID
	}
	if len(installment.PaymentHistory) > 0 {
		response.PaymentHistory = make(map[string]InstallmentPaymentResponse, len(installment.PaymentHistory))
		for key, payment := range installment.PaymentHistory {
			entry := InstallmentPaymentResponse{
				Amount: payment.Amount.String(),
				Paid:   payment.Paid,
			}
			if payment.TransactionID != nil {
				txnID := payment.TransactionID.String()
				entry.TransactionID = &txnID
			}
			response.PaymentHistory[key] = entry
		}
	}

	return response
}

// ToInstallmentListResponse converts an installment slice to an InstallmentListResponse DTO.
func ToInstallmentListResponse(installments []*entity.Installment) InstallmentListResponse {
	responses := make([]InstallmentResponse, len(installments))
	for i, installment := range installments {
		responses[i] = ToInstallmentResponse(installment)
	}
	return InstallmentListResponse{Installments: responses}
}
