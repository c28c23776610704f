package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wallet-tracker/backend/internal/application/usecase/report"
)

// ReportController handles the dashboard and comparison endpoints. The report
// outputs carry their own JSON shape and are returned without a DTO layer.
type ReportController struct {
	dashboardUseCase  *report.GetDashboardUseCase
	comparisonUseCase *report.GetComparisonUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dashboardUseCase *report.GetDashboardUseCase,
	comparisonUseCase *report.GetComparisonUseCase,
) *ReportController {
	return &ReportController{
		dashboardUseCase:  dashboardUseCase,
		comparisonUseCase: comparisonUseCase,
	}
}

// Dashboard handles GET /wallets/:id/dashboard requests.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	year, month, ok := periodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), report.GetDashboardInput{
		UserID:   userID,
		WalletID: walletID,
		Year:     year,
		Month:    month,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Comparison handles GET /wallets/:id/comparison requests.
func (c *ReportController) Comparison(ctx *gin.Context) {
	userID, walletID, ok := walletScope(ctx)
	if !ok {
		return
	}

	year, month, ok := periodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.comparisonUseCase.Execute(ctx.Request.Context(), report.GetComparisonInput{
		UserID:   userID,
		WalletID: walletID,
		Year:     year,
		Month:    month,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}
