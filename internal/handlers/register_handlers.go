package handlers

import (
	portssvc "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	invoiceService portssvc.InvoiceSvcFacade,
	reportingService portssvc.ReportingSvcFacade,
) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")

	registerInvoiceRoutes(v1, invoiceService)
	registerReportingRoutes(v1, reportingService)
}
