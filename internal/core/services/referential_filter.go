package services

import (
	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
)

// FilterLineItems retains only line items whose invoice_id is present in
// validIDs and returns the dropped count. This is the one integrity rule
// that is enforced rather than merely reported: the line-item table's
// foreign key requires every reference to resolve within the load batch.
func FilterLineItems(items []domain.LineItem, validIDs map[int64]struct{}) ([]domain.LineItem, int) {
	kept := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		if _, ok := validIDs[item.InvoiceID]; ok {
			kept = append(kept, item)
		}
	}
	return kept, len(items) - len(kept)
}

// InvoiceIDSet collects the identity set of an invoice batch.
func InvoiceIDSet(invoices []domain.Invoice) map[int64]struct{} {
	ids := make(map[int64]struct{}, len(invoices))
	for _, inv := range invoices {
		ids[inv.InvoiceID] = struct{}{}
	}
	return ids
}
