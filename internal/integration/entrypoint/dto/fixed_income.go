package dto

import (
	"time"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// CreateFixedIncomeRequest represents the request body for fixed income creation.
type CreateFixedIncomeRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	ExpectedAmount string `json:"expected_amount" binding:"required"`
}

// UpdateFixedIncomeRequest represents the request body for fixed income update.
type UpdateFixedIncomeRequest struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	ExpectedAmount *string `json:"expected_amount,omitempty"`
}

// SetReceivedRequest represents the request body for toggling a realization.
type SetReceivedRequest struct {
	PeriodKey string `json:"period_key" binding:"required"`
	Amount    string `json:"amount,omitempty"`
	Received  bool   `json:"received"`
}

// FixedIncomePaymentResponse represents one period realization in API responses.
type FixedIncomePaymentResponse struct {
	Amount   string `json:"amount"`
	Received bool   `json:"received"`
}

// FixedIncomeResponse represents a fixed income in API responses.
type FixedIncomeResponse struct {
	ID             string                                `json:"id"`
	WalletID       string                                `json:"wallet_id"`
	Name           string                                `json:"name"`
	ExpectedAmount string                                `json:"expected_amount"`
	Payments       map[string]FixedIncomePaymentResponse `json:"payments,omitempty"`
	CreatedAt      time.Time                             `json:"created_at"`
	UpdatedAt      time.Time                             `json:"updated_at"`
}

// SetReceivedResponse represents the outcome of toggling a realization.
// The transaction is only present when the income was marked received.
type SetReceivedResponse struct {
	FixedIncome FixedIncomeResponse  `json:"fixed_income"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// FixedIncomeListResponse represents the fixed income collection in API responses.
type FixedIncomeListResponse struct {
	FixedIncomes []FixedIncomeResponse `json:"fixed_incomes"`
}

// ToFixedIncomeResponse converts a domain FixedIncome entity to a FixedIncomeResponse DTO.
func ToFixedIncomeResponse(income *entity.FixedIncome) FixedIncomeResponse {
	response := FixedIncomeResponse{
		ID:             income.ID.String(),
		WalletID:       income.WalletID.String(),
		Name:           income.Name,
		ExpectedAmount: income.ExpectedAmount.String(),
		CreatedAt:      income.CreatedAt,
		UpdatedAt:      income.UpdatedAt,
	}

	if len(income.Payments) > 0 {
		response.Payments = make(map[string]FixedIncomePaymentResponse, len(income.Payments))
		for key, payment := range income.Payments {
			response.Payments[key] = FixedIncomePaymentResponse{
				Amount:   payment.Amount.String(),
				Received: payment.Received,
			}
		}
	}

	return response
}

// ToFixedIncomeListResponse converts a fixed income slice to a FixedIncomeListResponse DTO.
func ToFixedIncomeListResponse(incomes []*entity.FixedIncome) FixedIncomeListResponse {
	responses := make([]FixedIncomeResponse, len(incomes))
	for i, income := range incomes {
		responses[i] = ToFixedIncomeResponse(income)
	}
	return FixedIncomeListResponse{FixedIncomes: responses}
}
