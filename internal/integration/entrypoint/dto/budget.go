package dto

import (
	"time"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// BudgetConfigPayload carries the advisory config block in requests and responses.
type BudgetConfigPayload struct {
	PaymentType string  `json:"payment_type,omitempty"`
	CardID      *string `json:"card_id,omitempty"`
	Priority    int     `json:"priority,omitempty" binding:"omitempty,min=1,max=5"`
	Flexible    bool    `json:"flexible,omitempty"`
}

// UpsertBudgetRequest represents the request body for a budget upsert.
type UpsertBudgetRequest struct {
	Category      string               `json:"category" binding:"required"`
	Type          string               `json:"type" binding:"required,oneof=recurrent variable"`
	Total         *string              `json:"total,omitempty"`
	Subcategories map[string]string    `json:"subcategories,omitempty"`
	Config        *BudgetConfigPayload `json:"config,omitempty"`
}

// RecordRecurrentPaymentRequest represents the request body for settling a bill.
type RecordRecurrentPaymentRequest struct {
	PeriodKey   string  `json:"period_key" binding:"required"`
	Amount      string  `json:"amount" binding:"required"`
	PaymentType string  `json:"payment_type,omitempty" binding:"omitempty,oneof=expense_debit expense_credit"`
	CardID      *string `json:"card_id,omitempty"`
	Subcategory *string `json:"subcategory,omitempty"`
}

// BudgetPaymentResponse represents one settled bill in API responses.
type BudgetPaymentResponse struct {
	Amount      string  `json:"amount"`
	PaymentType string  `json:"payment_type"`
	CardID      *string `json:"card_id,omitempty"`
}

// BudgetResponse represents a budget category in API responses.
type BudgetResponse struct {
	ID            string                           `json:"id"`
	WalletID      string                           `json:"wallet_id"`
	Category      string                           `json:"category"`
	Type          string                           `json:"type"`
	Total         *string                          `json:"total,omitempty"`
	Subcategories map[string]string                `json:"subcategories,omitempty"`
	Payments      map[string]BudgetPaymentResponse `json:"payments,omitempty"`
	Config        BudgetConfigPayload              `json:"config"`
	CreatedAt     time.Time                        `json:"created_at"`
	UpdatedAt     time.Time                        `json:"updated_at"`
}

// RecordRecurrentPaymentResponse represents the outcome of settling a bill.
type RecordRecurrentPaymentResponse struct {
	Budget      BudgetResponse      `json:"budget"`
	Transaction TransactionResponse `json:"transaction"`
}

// BudgetListResponse represents the budget collection in API responses.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	response := BudgetResponse{
		ID:        budget.ID.String(),
		WalletID:  budget.WalletID.String(),
		Category:  budget.Category,
		Type:      string(budget.Type),
		Config:    toBudgetConfigPayload(budget.Config),
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}

	if budget.Total != nil {
		total := budget.Total.String()
		response.Total = &total
	}
	if len(budget.Subcategories) > 0 {
		response.Subcategories = make(map[string]string, len(budget.Subcategories))
		for name, amount := range budget.Subcategories {
			response.Subcategories[name] = amount.String()
		}
	}
	if len(budget.Payments) > 0 {
		response.Payments = make(map[string]BudgetPaymentResponse, len(budget.Payments))
		for key, payment := range budget.Payments {
			entry := BudgetPaymentResponse{
				Amount:      payment.Amount.String(),
				PaymentType: string(payment.PaymentType),
			}
			if payment.CardID != nil {
				cardID := payment.CardID.String()
				entry.CardID = &cardID
			}
			response.Payments[key] = entry
		}
	}

	return response
}

// ToBudgetListResponse converts a budget slice to a BudgetListResponse DTO.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		responses[i] = ToBudgetResponse(budget)
	}
	return BudgetListResponse{Budgets: responses}
}

func toBudgetConfigPayload(config entity.BudgetConfig) BudgetConfigPayload {
	payload := BudgetConfigPayload{
		PaymentType: string(config.PaymentType),
		Priority:    config.Priority,
		Flexible:    config.Flexible,
	}
	if config.CardID != nil {
		cardID := config.CardID.String()
		payload.CardID = &cardID
	}
	return payload
}
