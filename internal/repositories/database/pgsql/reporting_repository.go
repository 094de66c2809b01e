package pgsql

import (
	"context"
	"fmt"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	portsrepo "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// NewReportingRepository creates a new reporting repository
func NewReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// GetCategoryTotals retrieves item count and amount totals per category
func (r *reportingRepository) GetCategoryTotals(ctx context.Context) ([]domain.CategoryTotal, error) {
	query := `
		SELECT
			category,
			COUNT(*) AS item_count,
			COALESCE(SUM(line_rate * line_quantity), 0) AS total_amount
		FROM invoice_line_items
		GROUP BY category
		ORDER BY category;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying category totals: %w", err)
	}
	defer rows.Close()

	var result []domain.CategoryTotal
	for rows.Next() {
		var row domain.CategoryTotal
		var category string

		if err := rows.Scan(&category, &row.ItemCount, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("error scanning category total row: %w", err)
		}

		row.Category = domain.Category(category)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category total rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.CategoryTotal{}, nil
	}
	return result, nil
}

// GetInvoiceDiscrepancies retrieves invoices whose stated total differs
// from the sum of line_rate * line_quantity by strictly more than tolerance
func (r *reportingRepository) GetInvoiceDiscrepancies(ctx context.Context, tolerance decimal.Decimal) ([]domain.InvoiceDiscrepancy, error) {
	query := `
		SELECT
			i.invoice_id,
			i.total AS invoice_total,
			SUM(ili.line_rate * ili.line_quantity) AS calculated_total,
			i.total - SUM(ili.line_rate * ili.line_quantity) AS difference
		FROM invoices i
		JOIN invoice_line_items ili ON i.invoice_id = ili.invoice_id
		GROUP BY i.invoice_id, i.total
		HAVING ABS(i.total - SUM(ili.line_rate * ili.line_quantity)) > $1
		ORDER BY i.invoice_id;
	`

	rows, err := r.Pool.Query(ctx, query, tolerance)
	if err != nil {
		return nil, fmt.Errorf("error querying invoice discrepancies: %w", err)
	}
	defer rows.Close()

	var result []domain.InvoiceDiscrepancy
	for rows.Next() {
		var row domain.InvoiceDiscrepancy
		if err := rows.Scan(
			&row.InvoiceID,
			&row.InvoiceTotal,
			&row.CalculatedTotal,
			&row.Difference,
		); err != nil {
			return nil, fmt.Errorf("error scanning discrepancy row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating discrepancy rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.InvoiceDiscrepancy{}, nil
	}
	return result, nil
}
