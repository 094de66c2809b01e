package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the database row shape for the invoices table.
// ID is the surrogate primary key; InvoiceID carries the unique business
// identity the loader deduplicates on.
type Invoice struct {
	ID              int64            `json:"id"`
	DateCreated     *time.Time       `json:"dateCreated"`
	InvoiceID       int64            `json:"invoiceID"`
	SaleDescription string           `json:"saleDescription"`
	BrandName       string           `json:"brandName"`
	Coach           string           `json:"coach"`
	InvoiceStatus   string           `json:"invoiceStatusStr"`
	Total           *decimal.Decimal `json:"total"`
	InvoiceDate     *time.Time       `json:"invoiceDate"`
}
