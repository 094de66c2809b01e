package repositories

import (
	"context"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
)

// RecordSource supplies the two raw input batches for a pipeline run.
// Implementations must verify the column contract up front: a missing
// required column is an error from these methods, not a cleanable cell.
type RecordSource interface {
	ReadInvoices(ctx context.Context) ([]domain.RawRecord, error)
	ReadLineItems(ctx context.Context) ([]domain.RawRecord, error)
}
