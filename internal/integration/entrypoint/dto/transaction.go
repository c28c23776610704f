package dto

import (
	"time"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income expense_debit expense_credit"`
	Category    string  `json:"category" binding:"required"`
	Subcategory *string `json:"subcategory,omitempty"`
	CardID      *string `json:"card_id,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string  `json:"id"`
	WalletID    string  `json:"wallet_id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Subcategory *string `json:"subcategory,omitempty"`
	CardID      *string `json:"card_id,omitempty"`

	IsFixedIncomePayment bool    `json:"is_fixed_income_payment,omitempty"`
	FixedIncomeID        *string `json:"fixed_income_id,omitempty"`
	IsRecurrentPayment   bool    `json:"is_recurrent_payment,omitempty"`
	PeriodKey            string  `json:"period_key,omitempty"`

	PaidInstallmentIDs        []string `json:"paid_installment_ids,omitempty"`
	InstallmentPaymentPortion *string  `json:"installment_payment_portion,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransactionListResponse represents a transaction collection in API responses.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:                   txn.ID.String(),
		WalletID:             txn.WalletID.String(),
		Date:                 txn.Date.Format("2006-01-02"),
		Description:          txn.Description,
		Amount:               txn.Amount.String(),
		Type:                 string(txn.Type),
		Category:             txn.Category,
		Subcategory:          txn.Subcategory,
		IsFixedIncomePayment: txn.IsFixedIncomePayment,
		IsRecurrentPayment:   txn.IsRecurrentPayment,
		PeriodKey:            txn.PeriodKey,
		CreatedAt:            txn.CreatedAt,
		UpdatedAt:            txn.UpdatedAt,
	}

	if txn.CardID != nil {
		cardID := txn.CardID.String()
		response.CardID = &cardID
	}
	if txn.FixedIncomeID != nil {
		incomeID := txn.FixedIncomeID.String()
		response.FixedIncomeID = &incomeID
	}
	if txn.InstallmentPaymentPortion != nil {
		portion := txn.InstallmentPaymentPortion.String()
		response.InstallmentPaymentPortion = &portion
	}
	for _, id := range txn.PaidInstallmentIDs {
		response.PaidInstallmentIDs = append(response.PaidInstallmentIDs, id.String())
	}

	return response
}

// ToTransactionListResponse converts a transaction slice to a TransactionListResponse DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{Transactions: responses}
}
