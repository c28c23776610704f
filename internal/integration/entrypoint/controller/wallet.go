package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/usecase/wallet"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/middleware"
)

// WalletController handles wallet endpoints.
type WalletController struct {
	createUseCase    *wallet.CreateWalletUseCase
	getUseCase       *wallet.GetWalletUseCase
	listUseCase      *wallet.ListWalletsUseCase
	updateUseCase    *wallet.UpdateWalletUseCase
	deleteUseCase    *wallet.DeleteWalletUseCase
	normalizeUseCase *wallet.NormalizeWalletUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(
	createUseCase *wallet.CreateWalletUseCase,
	getUseCase *wallet.GetWalletUseCase,
	listUseCase *wallet.ListWalletsUseCase,
	updateUseCase *wallet.UpdateWalletUseCase,
	deleteUseCase *wallet.DeleteWalletUseCase,
	normalizeUseCase *wallet.NormalizeWalletUseCase,
) *WalletController {
	return &WalletController{
		createUseCase:    createUseCase,
		getUseCase:       getUseCase,
		listUseCase:      listUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		normalizeUseCase: normalizeUseCase,
	}
}

// Create handles POST /wallets requests.
func (c *WalletController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := wallet.CreateWalletInput{
		UserID:     userID,
		Name:       req.Name,
		Categories: req.Categories,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWalletResponse(output.Wallet))
}

// List handles GET /wallets requests.
func (c *WalletController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), wallet.ListWalletsInput{UserID: userID})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletListResponse(output.Wallets))
}

// Get handles GET /wallets/:id requests.
func (c *WalletController) Get(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), wallet.GetWalletInput{
		UserID:   userID,
		WalletID: walletID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output.Wallet))
}

// Update handles PATCH /wallets/:id requests.
func (c *WalletController) Update(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	var req dto.UpdateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := wallet.UpdateWalletInput{
		UserID:                userID,
		WalletID:              walletID,
		Name:                  req.Name,
		TransactionCategories: req.TransactionCategories,
		SurplusPeriodKey:      req.SurplusPeriodKey,
	}

	if req.BankDebitBalance != nil {
		balance, ok := parseAmount(ctx, *req.BankDebitBalance, "bank_debit_balance")
		if !ok {
			return
		}
		input.BankDebitBalance = &balance
	}
	if req.SurplusAmount != nil {
		amount, ok := parseAmount(ctx, *req.SurplusAmount, "surplus_amount")
		if !ok {
			return
		}
		input.SurplusAmount = &amount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output.Wallet))
}

// Delete handles DELETE /wallets/:id requests.
func (c *WalletController) Delete(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), wallet.DeleteWalletInput{
		UserID:   userID,
		WalletID: walletID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Normalize handles POST /wallets/:id/normalize requests.
func (c *WalletController) Normalize(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	output, err := c.normalizeUseCase.Execute(ctx.Request.Context(), wallet.NormalizeWalletInput{
		UserID:   userID,
		WalletID: walletID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NormalizeWalletResponse{
		Changed: output.Changed,
		Wallet:  dto.ToWalletResponse(output.Snapshot.Wallet),
	})
}

// walletScope resolves the authenticated user and the :id path parameter.
// It writes the error response itself when either is missing.
func walletScope(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return uuid.Nil, uuid.Nil, false
	}

	walletID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid wallet ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, walletID, true
}

// parseAmount parses a decimal request field, answering 400 when malformed.
func parseAmount(ctx *gin.Context, raw, field string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + field + " format",
		})
		return decimal.Decimal{}, false
	}
	return amount, true
}
