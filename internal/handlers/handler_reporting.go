package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/services"
	"github.com/MarkChukwuebuka/invoice-etl/internal/dto"
	"github.com/MarkChukwuebuka/invoice-etl/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the aggregate reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/categories", h.getCategoryReport)
		reports.GET("/discrepancies", h.getDiscrepancyReport)
	}
}

func (h *reportingHandler) getCategoryReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.CategoryReport(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate category report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate category report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryReportResponse(totals))
}

func (h *reportingHandler) getDiscrepancyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.DiscrepancyReport(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate discrepancy report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate discrepancy report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDiscrepancyReportResponse(rows))
}
