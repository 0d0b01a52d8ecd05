package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/dashboard", h.getDashboard)
		reportingGroup.GET("/expense-by-category", h.getExpenseByCategory)
		reportingGroup.GET("/reconciliation", h.getReconciliation)
	}
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Total assets, income and expense totals, expense breakdown, trend and the most recent transactions
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, mapping.ToDashboardResponse(*summary))
}

// getExpenseByCategory godoc
// @Summary Expense breakdown by category
// @Description Expense totals per category in first-seen order. Uncategorized expenses are grouped under "Other".
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ExpenseByCategoryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/expense-by-category [get]
func (h *reportingHandler) getExpenseByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	breakdown, err := h.reportingService.ExpenseByCategory(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, mapping.ToExpenseByCategoryResponse(breakdown))
}

// getReconciliation godoc
// @Summary Balance reconciliation
// @Description Compares each stored balance with the balance replayed from the transaction history
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/reconciliation [get]
func (h *reportingHandler) getReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	checks, err := h.reportingService.Reconciliation(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, mapping.ToReconciliationResponse(checks))
}
