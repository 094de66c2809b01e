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

type PgxLineItemRepository struct {
	BaseRepository
}

// NewLineItemRepository creates a new repository for line item data.
func NewLineItemRepository(pool *pgxpool.Pool) portsrepo.LineItemRepository {
	return &PgxLineItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLineItemRepository implements portsrepo.LineItemRepository
var _ portsrepo.LineItemRepository = (*PgxLineItemRepository)(nil)

// BulkInsertLineItems loads a filtered line-item batch in a single
// transaction. Unlike invoices there is no conflict key, so every row is
// inserted unconditionally and re-running the same batch duplicates rows.
// TODO: confirm with product whether line items should carry a dedup key;
// the asymmetry with invoices is inherited from the source system.
func (r *PgxLineItemRepository) BulkInsertLineItems(ctx context.Context, items []domain.LineItem) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	insertQuery := `
		INSERT INTO invoice_line_items (
			invoice_id, item_name, line_rate,
			line_quantity, created_at, category
		) VALUES ($1, $2, $3, $4, $5, $6);
	`

	var inserted int64
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, item := range items {
			m := mapping.ToModelLineItem(item)
			batch.Queue(insertQuery,
				m.InvoiceID,
				m.ItemName,
				m.LineRate,
				m.LineQuantity,
				m.CreatedAt,
				m.Category,
			)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for i := range items {
			tag, err := results.Exec()
			if err != nil {
				return fmt.Errorf("failed to insert line item for invoice %d: %w", items[i].InvoiceID, err)
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

// FindLineItemsByInvoiceID returns the stored line items for one invoice.
func (r *PgxLineItemRepository) FindLineItemsByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.LineItem, error) {
	query := `
		SELECT id, invoice_id, item_name, line_rate, line_quantity, created_at, category
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY id;
	`

	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("error querying line items: %w", err)
	}
	defer rows.Close()

	var result []models.LineItem
	for rows.Next() {
		var m models.LineItem
		if err := rows.Scan(
			&m.ID,
			&m.InvoiceID,
			&m.ItemName,
			&m.LineRate,
			&m.LineQuantity,
			&m.CreatedAt,
			&m.Category,
		); err != nil {
			return nil, fmt.Errorf("error scanning line item row: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line item rows: %w", err)
	}

	return mapping.ToDomainLineItemSlice(result), nil
}
