package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/usecase/transaction"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /wallets/:id/transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
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

	input := transaction.CreateTransactionInput{
		UserID:      userID,
		WalletID:    walletID,
		Date:        date,
		Description: req.Description,
		Amount:      amount,
		Type:        entity.TransactionType(req.Type),
		Category:    req.Category,
		Subcategory: req.Subcategory,
	}

	if req.CardID != nil {
		cardID, parseErr := uuid.Parse(*req.CardID)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid card ID format",
			})
			return
		}
		input.CardID = &cardID
	}

	// Alert recipient for budget threshold emails.
	input.UserEmail, _ = middleware.GetUserEmailFromContext(ctx)
	input.UserName, _ = middleware.GetUserNameFromContext(ctx)

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /wallets/:id/transactions requests. Results are scoped to
// the year and month query parameters.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	year, month, ok := periodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID:   userID,
		WalletID: walletID,
		Year:     year,
		Month:    month,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Delete handles DELETE /wallets/:id/transactions/:transactionId requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("transactionId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		UserID:        userID,
		WalletID:      walletID,
		TransactionID: transactionID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// periodQuery parses the year and month query parameters.
func periodQuery(ctx *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil || year <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: domainerror.ErrMissingYear.Error(),
			Code:  string(domainerror.ErrCodeMissingYear),
		})
		return 0, 0, false
	}

	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 1 || month > 12 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: domainerror.ErrInvalidMonth.Error(),
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return 0, 0, false
	}

	return year, time.Month(month), true
}
