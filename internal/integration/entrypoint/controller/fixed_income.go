package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/usecase/fixedincome"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/dto"
)

// FixedIncomeController handles fixed income endpoints.
type FixedIncomeController struct {
	createUseCase      *fixedincome.CreateFixedIncomeUseCase
	updateUseCase      *fixedincome.UpdateFixedIncomeUseCase
	deleteUseCase      *fixedincome.DeleteFixedIncomeUseCase
	setReceivedUseCase *fixedincome.SetReceivedUseCase
}

// NewFixedIncomeController creates a new fixed income controller instance.
func NewFixedIncomeController(
	createUseCase *fixedincome.CreateFixedIncomeUseCase,
	updateUseCase *fixedincome.UpdateFixedIncomeUseCase,
	deleteUseCase *fixedincome.DeleteFixedIncomeUseCase,
	setReceivedUseCase *fixedincome.SetReceivedUseCase,
) *FixedIncomeController {
	return &FixedIncomeController{
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		setReceivedUseCase: setReceivedUseCase,
	}
}

// Create handles POST /wallets/:id/fixed-incomes requests.
func (c *FixedIncomeController) Create(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateFixedIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	expected, ok := parseAmount(ctx, req.ExpectedAmount, "expected_amount")
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), fixedincome.CreateFixedIncomeInput{
		UserID:         userID,
		WalletID:       walletID,
		Name:           req.Name,
		ExpectedAmount: expected,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFixedIncomeResponse(output.FixedIncome))
}

// Update handles PATCH /wallets/:id/fixed-incomes/:incomeId requests.
func (c *FixedIncomeController) Update(ctx *gin.Context) {
	userID, walletID, incomeID, ok := fixedIncomeScope(ctx)
	if !ok {
		return
	}

	var req dto.UpdateFixedIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := fixedincome.UpdateFixedIncomeInput{
		UserID:        userID,
		WalletID:      walletID,
		FixedIncomeID: incomeID,
		Name:          req.Name,
	}
	if req.ExpectedAmount != nil {
		expected, ok := parseAmount(ctx, *req.ExpectedAmount, "expected_amount")
		if !ok {
			return
		}
		input.ExpectedAmount = &expected
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedIncomeResponse(output.FixedIncome))
}

// Delete handles DELETE /wallets/:id/fixed-incomes/:incomeId requests.
func (c *FixedIncomeController) Delete(ctx *gin.Context) {
	userID, walletID, incomeID, ok := fixedIncomeScope(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), fixedincome.DeleteFixedIncomeInput{
		UserID:        userID,
		WalletID:      walletID,
		FixedIncomeID: incomeID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetReceived handles PUT /wallets/:id/fixed-incomes/:incomeId/received
// requests. Marking a period received creates the income transaction; marking
// it not received removes it again.
func (c *FixedIncomeController) SetReceived(ctx *gin.Context) {
	userID, walletID, incomeID, ok := fixedIncomeScope(ctx)
	if !ok {
		return
	}

	var req dto.SetReceivedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	amount := decimal.Zero
	if req.Amount != "" {
		parsed, ok := parseAmount(ctx, req.Amount, "amount")
		if !ok {
			return
		}
		amount = parsed
	}

	output, err := c.setReceivedUseCase.Execute(ctx.Request.Context(), fixedincome.SetReceivedInput{
		UserID:        userID,
		WalletID:      walletID,
		FixedIncomeID: incomeID,
		PeriodKey:     req.PeriodKey,
		Amount:        amount,
		Received:      req.Received,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	response := dto.SetReceivedResponse{
		FixedIncome: dto.ToFixedIncomeResponse(output.FixedIncome),
	}
	if output.Transaction != nil {
		txn := dto.ToTransactionResponse(output.Transaction)
		response.Transaction = &txn
	}

	ctx.JSON(http.StatusOK, response)
}

func fixedIncomeScope(ctx *gin.Context) (uuid.UUID, uuid.UUID, uuid.UUID, bool) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	incomeID, err := uuid.Parse(ctx.Param("incomeId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fixed income ID format",
		})
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	return userID, walletID, incomeID, true
}
