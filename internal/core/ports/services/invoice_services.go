package services

import (
	"context"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
)

// InvoiceSvcFacade exposes read operations over stored invoices.
type InvoiceSvcFacade interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	GetInvoiceLineItems(ctx context.Context, invoiceID int64) ([]domain.LineItem, error)
}

// ReportingSvcFacade exposes the aggregate reports.
type ReportingSvcFacade interface {
	CategoryReport(ctx context.Context) ([]domain.CategoryTotal, error)
	DiscrepancyReport(ctx context.Context) ([]domain.InvoiceDiscrepancy, error)
}
