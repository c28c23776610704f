package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/usecase/creditcard"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/dto"
)

// CreditCardController handles credit card endpoints.
type CreditCardController struct {
	createUseCase  *creditcard.CreateCreditCardUseCase
	updateUseCase  *creditcard.UpdateCreditCardUseCase
	deleteUseCase  *creditcard.DeleteCreditCardUseCase
	payBillUseCase *creditcard.PayCardBillUseCase
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(
	createUseCase *creditcard.CreateCreditCardUseCase,
	updateUseCase *creditcard.UpdateCreditCardUseCase,
	deleteUseCase *creditcard.DeleteCreditCardUseCase,
	payBillUseCase *creditcard.PayCardBillUseCase,
) *CreditCardController {
	return &CreditCardController{
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		payBillUseCase: payBillUseCase,
	}
}

// Create handles POST /wallets/:id/cards requests.
func (c *CreditCardController) Create(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	limit, ok := parseAmount(ctx, req.Limit, "limit")
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), creditcard.CreateCreditCardInput{
		UserID:   userID,
		WalletID: walletID,
		Name:     req.Name,
		Limit:    limit,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(output.CreditCard))
}

// Update handles PATCH /wallets/:id/cards/:cardId requests.
func (c *CreditCardController) Update(ctx *gin.Context) {
	userID, walletID, cardID, ok := cardScope(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := creditcard.UpdateCreditCardInput{
		UserID:   userID,
		WalletID: walletID,
		CardID:   cardID,
		Name:     req.Name,
	}

	if req.Limit != nil {
		limit, ok := parseAmount(ctx, *req.Limit, "limit")
		if !ok {
			return
		}
		input.Limit = &limit
	}
	if req.BankAvailable != nil {
		available, ok := parseAmount(ctx, *req.BankAvailable, "bank_available")
		if !ok {
			return
		}
		input.BankAvailable = &available
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(output.CreditCard))
}

// Delete handles DELETE /wallets/:id/cards/:cardId requests.
func (c *CreditCardController) Delete(ctx *gin.Context) {
	userID, walletID, cardID, ok := cardScope(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), creditcard.DeleteCreditCardInput{
		UserID:   userID,
		WalletID: walletID,
		CardID:   cardID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// PayBill handles POST /wallets/:id/cards/:cardId/pay-bill requests. The
// payment produces one debit transaction under the reserved debt category and
// advances each selected installment by one period.
func (c *CreditCardController) PayBill(ctx *gin.Context) {
	userID, walletID, cardID, ok := cardScope(ctx)
	if !ok {
		return
	}

	var req dto.PayCardBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: domainerror.ErrInvalidDate.Error(),
			Code:  string(domainerror.ErrCodeInvalidDate),
		})
		return
	}

	amount, ok := parseAmount(ctx, req.Amount, "amount")
	if !ok {
		return
	}

	input := creditcard.PayCardBillInput{
		UserID:   userID,
		WalletID: walletID,
		CardID:   cardID,
		Date:     date,
		Amount:   amount,
	}

	for _, raw := range req.InstallmentIDs {
		installmentID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid installment ID format",
			})
			return
		}
		input.InstallmentIDs = append(input.InstallmentIDs, installmentID)
	}

	output, err := c.payBillUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	response := dto.PayCardBillResponse{
		Transaction: dto.ToTransactionResponse(output.Transaction),
	}
	if len(output.Installments) > 0 {
		response.Installments = dto.ToInstallmentListResponse(output.Installments).Installments
	}

	ctx.JSON(http.StatusCreated, response)
}

func cardScope(ctx *gin.Context) (uuid.UUID, uuid.UUID, uuid.UUID, bool) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	cardID, err := uuid.Parse(ctx.Param("cardId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	return userID, walletID, cardID, true
}
