package repositories

import (
	"context"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	// BulkInsertInvoices inserts the batch in one transaction, skipping
	// rows whose invoice_id already exists. Returns the number of newly
	// inserted rows only.
	BulkInsertInvoices(ctx context.Context, invoices []domain.Invoice) (int64, error)

	// ListInvoices returns all stored invoices ordered by invoice_id.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// LineItemRepository defines persistence operations for line items.
type LineItemRepository interface {
	// BulkInsertLineItems inserts the batch in one transaction. There is
	// no uniqueness key: every row is inserted unconditionally.
	BulkInsertLineItems(ctx context.Context, items []domain.LineItem) (int64, error)

	// FindLineItemsByInvoiceID returns the stored line items for one invoice.
	FindLineItemsByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.LineItem, error)
}
