package pgsql

import (
	"context"
	"fmt"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	portsrepo "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/repositories"
	"github.com/MarkChukwuebuka/invoice-etl/internal/models"
	"github.com/MarkChukwuebuka/invoice-etl/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// NewInvoiceRepository creates a new repository for invoice data.
func NewInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepository
var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

// BulkInsertInvoices loads a cleaned invoice batch in a single
// transaction. Rows colliding on invoice_id are skipped (existing row
// wins, no update), so the returned count covers newly inserted rows only.
func (r *PgxInvoiceRepository) BulkInsertInvoices(ctx context.Context, invoices []domain.Invoice) (int64, error) {
	if len(invoices) == 0 {
		return 0, nil
	}

	insertQuery := `
		INSERT INTO invoices (
			date_created, invoice_id, sale_description,
			brand_name, coach, invoice_status_str,
			total, invoice_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (invoice_id) DO NOTHING;
	`

	var inserted int64
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, inv := range invoices {
			m := mapping.ToModelInvoice(inv)
			batch.Queue(insertQuery,
				m.DateCreated,
				m.InvoiceID,
				m.SaleDescription,
				m.BrandName,
				m.Coach,
				m.InvoiceStatus,
				m.Total,
				m.InvoiceDate,
			)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for i := range invoices {
			tag, err := results.Exec()
			if err != nil {
				return fmt.Errorf("failed to insert invoice %d: %w", invoices[i].InvoiceID, err)
			}
			inserted += tag.RowsAffected()
		}
		return results.Close()
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// ListInvoices returns all stored invoices ordered by invoice_id.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `
		SELECT id, date_created, invoice_id, sale_description,
			brand_name, coach, invoice_status_str, total, invoice_date
		FROM invoices
		ORDER BY invoice_id;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying invoices: %w", err)
	}
	defer rows.Close()

	var result []models.Invoice
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(
			&m.ID,
			&m.DateCreated,
			&m.InvoiceID,
			&m.SaleDescription,
			&m.BrandName,
			&m.Coach,
			&m.InvoiceStatus,
			&m.Total,
			&m.InvoiceDate,
		); err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	return mapping.ToDomainInvoiceSlice(result), nil
}
