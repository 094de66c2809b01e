package domain

import (
	"github.com/shopspring/decimal"
)

// DiscrepancyTolerance is the absolute difference between an invoice's
// stated total and the sum of its line items above which the invoice is
// reported as discrepant. Strictly greater-than: a difference of exactly
// 0.01 is not flagged.
var DiscrepancyTolerance = decimal.RequireFromString("0.01")

// CategoryTotal is one row of the per-category aggregate report.
type CategoryTotal struct {
	Category    Category        `json:"category"`
	ItemCount   int64           `json:"itemCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// InvoiceDiscrepancy is one row of the invoice-vs-line-items report.
type InvoiceDiscrepancy struct {
	InvoiceID       int64           `json:"invoiceID"`
	InvoiceTotal    decimal.Decimal `json:"invoiceTotal"`
	CalculatedTotal decimal.Decimal `json:"calculatedTotal"`
	Difference      decimal.Decimal `json:"difference"`
}

// ExceedsTolerance reports whether the absolute difference is strictly
// above DiscrepancyTolerance.
func (d InvoiceDiscrepancy) ExceedsTolerance() bool {
	return d.Difference.Abs().GreaterThan(DiscrepancyTolerance)
}
