package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is the database row shape for the invoice_line_items table.
// There is no uniqueness constraint beyond the surrogate ID, so repeated
// loads of the same batch produce duplicate rows.
type LineItem struct {
	ID           int64            `json:"id"`
	InvoiceID    int64            `json:"invoiceID"`
	ItemName     string           `json:"itemName"`
	LineRate     *decimal.Decimal `json:"lineRate"`
	LineQuantity *decimal.Decimal `json:"lineQuantity"`
	CreatedAt    *time.Time       `json:"createdAt"`
	Category     string           `json:"category"`
}
