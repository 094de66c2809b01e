package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/services"
	"github.com/MarkChukwuebuka/invoice-etl/internal/dto"
	"github.com/MarkChukwuebuka/invoice-etl/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests for stored invoices
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers routes related to invoices
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceID/line-items", h.getInvoiceLineItems)
	}
}

func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponseSlice(invoices))
}

func (h *invoiceHandler) getInvoiceLineItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoiceID, err := strconv.ParseInt(c.Param("invoiceID"), 10, 64)
	if err != nil {
		logger.Warn("Invalid invoice ID in path", slog.String("invoiceID", c.Param("invoiceID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invoice ID must be an integer"})
		return
	}

	items, err := h.invoiceService.GetInvoiceLineItems(c.Request.Context(), invoiceID)
	if err != nil {
		logger.Error("Failed to fetch line items",
			slog.Int64("invoice_id", invoiceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch line items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLineItemResponseSlice(items))
}
