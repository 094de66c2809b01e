package services

import (
	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	"github.com/MarkChukwuebuka/invoice-etl/internal/utils/normalize"
)

// CleanInvoices coerces a batch of raw invoice rows into typed records.
// The output has the same length and order as the input; bad cells become
// nils or field defaults, never errors.
func CleanInvoices(rows []domain.RawRecord) []domain.Invoice {
	invoices := make([]domain.Invoice, len(rows))
	for i, row := range rows {
		invoices[i] = domain.Invoice{
			InvoiceID:       parseInvoiceID(row.Get("invoice_id")),
			DateCreated:     normalize.Timestamp(row.Get("date_created")),
			SaleDescription: normalize.Text("sale_description", row.Get("sale_description")),
			BrandName:       normalize.Text("brand_name", row.Get("brand_name")),
			Coach:           normalize.Text("coach", row.Get("coach")),
			InvoiceStatus:   row.Get("invoice_status_str"),
			Total:           normalize.Decimal(row.Get("total")),
			InvoiceDate:     normalize.Date(row.Get("invoice_date")),
		}
	}
	return invoices
}

// CleanLineItems coerces a batch of raw line-item rows into typed records
// and attaches the computed category. Same cardinality and order
// guarantees as CleanInvoices.
func CleanLineItems(rows []domain.RawRecord) []domain.LineItem {
	items := make([]domain.LineItem, len(rows))
	for i, row := range rows {
		itemName := normalize.Text("item_name", row.Get("item_name"))
		items[i] = domain.LineItem{
			InvoiceID:    parseInvoiceID(row.Get("invoice_id")),
			ItemName:     itemName,
			LineRate:     normalize.Decimal(row.Get("line_rate")),
			LineQuantity: normalize.Decimal(row.Get("line_quantity")),
			CreatedAt:    normalize.Timestamp(row.Get("created_at")),
			Category:     domain.ClassifyItem(itemName),
		}
	}
	return items
}

// parseInvoiceID reads the identity column. Input IDs sometimes arrive as
// "123.0" from spreadsheet exports, so decimal coercion is applied before
// truncating to an integer. Unparseable IDs become 0, which can never
// match a real invoice and so is dropped by the referential filter.
func parseInvoiceID(raw string) int64 {
	d := normalize.Decimal(raw)
	if d == nil {
		return 0
	}
	return d.Truncate(0).IntPart()
}
