package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/usecase/installment"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/dto"
)

// InstallmentController handles installment endpoints.
type InstallmentController struct {
	createUseCase *installment.CreateInstallmentUseCase
	updateUseCase *installment.UpdateInstallmentUseCase
	deleteUseCase *installment.DeleteInstallmentUseCase
	toggleUseCase *installment.TogglePaymentUseCase
}

// NewInstallmentController creates a new installment controller instance.
func NewInstallmentController(
	createUseCase *installment.CreateInstallmentUseCase,
	updateUseCase *installment.UpdateInstallmentUseCase,
	deleteUseCase *installment.DeleteInstallmentUseCase,
	toggleUseCase *installment.TogglePaymentUseCase,
) *InstallmentController {
	return &InstallmentController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		toggleUseCase: toggleUseCase,
	}
}

// Create handles POST /wallets/:id/installments requests.
func (c *InstallmentController) Create(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateInstallmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	total, ok := parseAmount(ctx, req.TotalAmount, "total_amount")
	if !ok {
		return
	}

	input := installment.CreateInstallmentInput{
		UserID:            userID,
		WalletID:          walletID,
		Description:       req.Description,
		TotalAmount:       total,
		TotalInstallments: req.TotalInstallments,
		Type:              entity.InstallmentType(req.Type),
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

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInstallmentResponse(output.Installment))
}

// Update handles PATCH /wallets/:id/installments/:installmentId requests.
func (c *InstallmentController) Update(ctx *gin.Context) {
	userID, walletID, installmentID, ok := installmentScope(ctx)
	if !ok {
		return
	}

	var req dto.UpdateInstallmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := installment.UpdateInstallmentInput{
		UserID:            userID,
		WalletID:          walletID,
		InstallmentID:     installmentID,
		Description:       req.Description,
		TotalInstallments: req.TotalInstallments,
	}

	if req.TotalAmount != nil {
		total, ok := parseAmount(ctx, *req.TotalAmount, "total_amount")
		if !ok {
			return
		}
		input.TotalAmount = &total
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

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInstallmentResponse(output.Installment))
}

// Delete handles DELETE /wallets/:id/installments/:installmentId requests.
func (c *InstallmentController) Delete(ctx *gin.Context) {
	userID, walletID, installmentID, ok := installmentScope(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), installment.DeleteInstallmentInput{
		UserID:        userID,
		WalletID:      walletID,
		InstallmentID: installmentID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// TogglePayment handles POST /wallets/:id/installments/:installmentId/toggle-payment
// requests. It flips the manual paid mark for one period; entries locked to a
// card bill transaction are rejected.
func (c *InstallmentController) TogglePayment(ctx *gin.Context) {
	userID, walletID, installmentID, ok := installmentScope(ctx)
	if !ok {
		return
	}

	var req dto.TogglePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), installment.TogglePaymentInput{
		UserID:        userID,
		WalletID:      walletID,
		InstallmentID: installmentID,
		PeriodKey:     req.PeriodKey,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInstallmentResponse(output.Installment))
}

func installmentScope(ctx *gin.Context) (uuid.UUID, uuid.UUID, uuid.UUID, bool) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	installmentID, err := uuid.Parse(ctx.Param("installmentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid installment ID format",
		})
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	return userID, walletID, installmentID, true
}
