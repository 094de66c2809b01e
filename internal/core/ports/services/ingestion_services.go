package services

import (
	"context"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
)

// IngestionSvcFacade runs the full ingestion pipeline.
type IngestionSvcFacade interface {
	// Run reads both batches from the configured source, cleans and
	// validates them, drops orphan line items, and bulk-loads the rest.
	// Validation findings never fail the run; storage failures do.
	Run(ctx context.Context) (*domain.LoadSummary, error)
}
