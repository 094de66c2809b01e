package dto

import (
	"time"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceResponse defines the data returned for a stored invoice.
// Nullable columns stay pointers so the JSON shows null, not zero values.
type InvoiceResponse struct {
	InvoiceID       int64            `json:"invoiceID"`
	DateCreated     *time.Time       `json:"dateCreated"`
	SaleDescription string           `json:"saleDescription"`
	BrandName       string           `json:"brandName"`
	Coach           string           `json:"coach"`
	InvoiceStatus   string           `json:"invoiceStatus"`
	Total           *decimal.Decimal `json:"total"`
	InvoiceDate     *string          `json:"invoiceDate"` // YYYY-MM-DD
}

// LineItemResponse defines the data returned for a stored line item.
type LineItemResponse struct {
	InvoiceID    int64            `json:"invoiceID"`
	ItemName     string           `json:"itemName"`
	LineRate     *decimal.Decimal `json:"lineRate"`
	LineQuantity *decimal.Decimal `json:"lineQuantity"`
	CreatedAt    *time.Time       `json:"createdAt"`
	Category     string           `json:"category"`
}

// ToInvoiceResponse converts a domain Invoice to its response DTO
func ToInvoiceResponse(inv domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:       inv.InvoiceID,
		DateCreated:     inv.DateCreated,
		SaleDescription: inv.SaleDescription,
		BrandName:       inv.BrandName,
		Coach:           inv.Coach,
		InvoiceStatus:   inv.InvoiceStatus,
		Total:           inv.Total,
	}
	if inv.InvoiceDate != nil {
		date := inv.InvoiceDate.Format("2006-01-02")
		resp.InvoiceDate = &date
	}
	return resp
}

// ToInvoiceResponseSlice converts a slice of domain Invoices to response DTOs
func ToInvoiceResponseSlice(invoices []domain.Invoice) []InvoiceResponse {
	resp := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = ToInvoiceResponse(inv)
	}
	return resp
}

// ToLineItemResponse converts a domain LineItem to its response DTO
func ToLineItemResponse(item domain.LineItem) LineItemResponse {
	return LineItemResponse{
		InvoiceID:    item.InvoiceID,
		ItemName:     item.ItemName,
		LineRate:     item.LineRate,
		LineQuantity: item.LineQuantity,
		CreatedAt:    item.CreatedAt,
		Category:     string(item.Category),
	}
}

// ToLineItemResponseSlice converts a slice of domain LineItems to response DTOs
func ToLineItemResponseSlice(items []domain.LineItem) []LineItemResponse {
	resp := make([]LineItemResponse, len(items))
	for i, item := range items {
		resp[i] = ToLineItemResponse(item)
	}
	return resp
}
