// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/dto"
)

// respondDomainError maps domain errors to HTTP responses. Coded errors carry
// their category in the code (XXX-YYZZZZ, YY = 01 validation, 02 business
// rule, 03 throttling, 04 not found); bare not-found sentinels map to 404.
func respondDomainError(ctx *gin.Context, err error) {
	var walletErr *domainerror.WalletError
	if errors.As(err, &walletErr) {
		respondCoded(ctx, string(walletErr.Code), walletErr.Message)
		return
	}
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		respondCoded(ctx, string(txnErr.Code), txnErr.Message)
		return
	}
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		respondCoded(ctx, string(budgetErr.Code), budgetErr.Message)
		return
	}
	var incomeErr *domainerror.FixedIncomeError
	if errors.As(err, &incomeErr) {
		respondCoded(ctx, string(incomeErr.Code), incomeErr.Message)
		return
	}
	var installmentErr *domainerror.InstallmentError
	if errors.As(err, &installmentErr) {
		respondCoded(ctx, string(installmentErr.Code), installmentErr.Message)
		return
	}
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		respondCoded(ctx, string(reportErr.Code), reportErr.Message)
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrWalletNotFound):
		respondNotFound(ctx, err, string(domainerror.ErrCodeWalletNotFound))
	case errors.Is(err, domainerror.ErrTransactionNotFound):
		respondNotFound(ctx, err, string(domainerror.ErrCodeTransactionNotFound))
	case errors.Is(err, domainerror.ErrBudgetNotFound):
		respondNotFound(ctx, err, string(domainerror.ErrCodeBudgetNotFound))
	case errors.Is(err, domainerror.ErrFixedIncomeNotFound):
		respondNotFound(ctx, err, string(domainerror.ErrCodeFixedIncomeNotFound))
	case errors.Is(err, domainerror.ErrInstallmentNotFound):
		respondNotFound(ctx, err, string(domainerror.ErrCodeInstallmentNotFound))
	case errors.Is(err, domainerror.ErrCardNotFound):
		respondNotFound(ctx, err, string(domainerror.ErrCodeCardNotFound))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func respondCoded(ctx *gin.Context, code, message string) {
	ctx.JSON(statusForErrorCode(code), dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func respondNotFound(ctx *gin.Context, err error, code string) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}

// respondUnauthenticated is used when the auth middleware did not populate the
// user identity.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// statusForErrorCode maps an error code category to an HTTP status.
func statusForErrorCode(code string) int {
	if len(code) < 6 {
		return http.StatusInternalServerError
	}
	switch code[4:6] {
	case "01":
		return http.StatusBadRequest
	case "02":
		return http.StatusConflict
	case "03":
		return http.StatusTooManyRequests
	case "04":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
