package dto

import (
	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryReportRow represents one category in the category report response
type CategoryReportRow struct {
	Category    string          `json:"category"`
	ItemCount   int64           `json:"itemCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// CategoryReportResponse represents the category report response
type CategoryReportResponse struct {
	Rows []CategoryReportRow `json:"rows"`
}

// DiscrepancyRow represents one discrepant invoice in the report response
type DiscrepancyRow struct {
	InvoiceID       int64           `json:"invoiceID"`
	InvoiceTotal    decimal.Decimal `json:"invoiceTotal"`
	CalculatedTotal decimal.Decimal `json:"calculatedTotal"`
	Difference      decimal.Decimal `json:"difference"`
}

// DiscrepancyReportResponse represents the discrepancy report response
type DiscrepancyReportResponse struct {
	Tolerance decimal.Decimal  `json:"tolerance"`
	Rows      []DiscrepancyRow `json:"rows"`
}

// ToCategoryReportResponse converts domain category totals to a DTO response
func ToCategoryReportResponse(totals []domain.CategoryTotal) CategoryReportResponse {
	response := CategoryReportResponse{
		Rows: make([]CategoryReportRow, len(totals)),
	}
	for i, t := range totals {
		response.Rows[i] = CategoryReportRow{
			Category:    string(t.Category),
			ItemCount:   t.ItemCount,
			TotalAmount: t.TotalAmount,
		}
	}
	return response
}

// ToDiscrepancyReportResponse converts domain discrepancies to a DTO response
func ToDiscrepancyReportResponse(rows []domain.InvoiceDiscrepancy) DiscrepancyReportResponse {
	response := DiscrepancyReportResponse{
		Tolerance: domain.DiscrepancyTolerance,
		Rows:      make([]DiscrepancyRow, len(rows)),
	}
	for i, d := range rows {
		response.Rows[i] = DiscrepancyRow{
			InvoiceID:       d.InvoiceID,
			InvoiceTotal:    d.InvoiceTotal,
			CalculatedTotal: d.CalculatedTotal,
			Difference:      d.Difference,
		}
	}
	return response
}
