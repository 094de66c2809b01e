package repositories

import (
	"context"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only aggregate queries exposed by
// the reporting API.
type ReportingRepository interface {
	// GetCategoryTotals returns item count and rate*quantity amount per category.
	GetCategoryTotals(ctx context.Context) ([]domain.CategoryTotal, error)

	// GetInvoiceDiscrepancies returns invoices whose stated total differs
	// from the sum of their line items by strictly more than tolerance.
	GetInvoiceDiscrepancies(ctx context.Context, tolerance decimal.Decimal) ([]domain.InvoiceDiscrepancy, error)
}
