package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/usecase/budget"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	upsertUseCase        *budget.UpsertBudgetUseCase
	listUseCase          *budget.ListBudgetsUseCase
	deleteUseCase        *budget.DeleteBudgetUseCase
	recordPaymentUseCase *budget.RecordRecurrentPaymentUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	upsertUseCase *budget.UpsertBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	recordPaymentUseCase *budget.RecordRecurrentPaymentUseCase,
) *BudgetController {
	return &BudgetController{
		upsertUseCase:        upsertUseCase,
		listUseCase:          listUseCase,
		deleteUseCase:        deleteUseCase,
		recordPaymentUseCase: recordPaymentUseCase,
	}
}

// Upsert handles PUT /wallets/:id/budgets requests. The category acts as the
// natural key: an existing budget for it is replaced, its payment ledger kept.
func (c *BudgetController) Upsert(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	var req dto.UpsertBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := budget.UpsertBudgetInput{
		UserID:   userID,
		WalletID: walletID,
		Category: req.Category,
		Type:     entity.BudgetType(req.Type),
	}

	if req.Total != nil {
		total, ok := parseAmount(ctx, *req.Total, "total")
		if !ok {
			return
		}
		input.Total = &total
	}
	if len(req.Subcategories) > 0 {
		input.Subcategories = make(map[string]decimal.Decimal, len(req.Subcategories))
		for name, raw := range req.Subcategories {
			amount, ok := parseAmount(ctx, raw, "subcategories."+name)
			if !ok {
				return
			}
			input.Subcategories[name] = amount
		}
	}
	if req.Config != nil {
		config, ok := budgetConfigFromPayload(ctx, req.Config)
		if !ok {
			return
		}
		input.Config = config
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// List handles GET /wallets/:id/budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID:   userID,
		WalletID: walletID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Delete handles DELETE /wallets/:id/budgets/:category requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	category := ctx.Param("category")
	if category == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Category is required",
		})
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		UserID:   userID,
		WalletID: walletID,
		Category: category,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RecordPayment handles POST /wallets/:id/budgets/:category/payments requests.
// It settles a recurrent bill for one period and creates the linked expense.
func (c *BudgetController) RecordPayment(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	category := ctx.Param("category")
	if category == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Category is required",
		})
		return
	}

	var req dto.RecordRecurrentPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	amount, ok := parseAmount(ctx, req.Amount, "amount")
	if !ok {
		return
	}

	input := budget.RecordRecurrentPaymentInput{
		UserID:      userID,
		WalletID:    walletID,
		Category:    category,
		Subcategory: req.Subcategory,
		PeriodKey:   req.PeriodKey,
		Amount:      amount,
		PaymentType: entity.TransactionType(req.PaymentType),
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

	output, err := c.recordPaymentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RecordRecurrentPaymentResponse{
		Budget:      dto.ToBudgetResponse(output.Budget),
		Transaction: dto.ToTransactionResponse(output.Transaction),
	})
}

func budgetConfigFromPayload(ctx *gin.Context, payload *dto.BudgetConfigPayload) (entity.BudgetConfig, bool) {
	config := entity.BudgetConfig{
		PaymentType: entity.TransactionType(payload.PaymentType),
		Priority:    payload.Priority,
		Flexible:    payload.Flexible,
	}
	if payload.CardID != nil {
		cardID, err := uuid.Parse(*payload.CardID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid card ID format",
			})
			return entity.BudgetConfig{}, false
		}
		config.CardID = &cardID
	}
	return config, true
}
