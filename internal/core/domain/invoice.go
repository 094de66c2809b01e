package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a cleaned invoice record.
// Nullable columns are pointers: a nil value means the raw cell was
// missing or unparseable, and loads as SQL NULL.
type Invoice struct {
	InvoiceID       int64            `json:"invoiceID"`
	DateCreated     *time.Time       `json:"dateCreated"`
	SaleDescription string           `json:"saleDescription"`
	BrandName       string           `json:"brandName"`
	Coach           string           `json:"coach"`
	InvoiceStatus   string           `json:"invoiceStatus"`
	Total           *decimal.Decimal `json:"total"`
	InvoiceDate     *time.Time       `json:"invoiceDate"` // calendar date, time part zeroed
}

// LineItem represents a cleaned invoice line item.
// Category is always computed from ItemName, never taken from input.
type LineItem struct {
	InvoiceID    int64            `json:"invoiceID"`
	ItemName     string           `json:"itemName"`
	LineRate     *decimal.Decimal `json:"lineRate"`
	LineQuantity *decimal.Decimal `json:"lineQuantity"`
	CreatedAt    *time.Time       `json:"createdAt"`
	Category     Category         `json:"category"`
}
