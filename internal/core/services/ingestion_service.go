package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	portsrepo "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/repositories"
	portssvc "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/services"
)

// ingestionService runs the batch pipeline: read raw batches, clean,
// validate (diagnostic only), drop orphan line items, bulk-load.
type ingestionService struct {
	BaseService
	source       portsrepo.RecordSource
	invoiceRepo  portsrepo.InvoiceRepository
	lineItemRepo portsrepo.LineItemRepository
}

// NewIngestionService creates the ingestion pipeline service.
func NewIngestionService(
	source portsrepo.RecordSource,
	invoiceRepo portsrepo.InvoiceRepository,
	lineItemRepo portsrepo.LineItemRepository,
) portssvc.IngestionSvcFacade {
	return &ingestionService{
		source:       source,
		invoiceRepo:  invoiceRepo,
		lineItemRepo: lineItemRepo,
	}
}

// Ensure ingestionService implements the IngestionSvcFacade interface
var _ portssvc.IngestionSvcFacade = (*ingestionService)(nil)

// Run executes one full pipeline pass. Validation findings are logged and
// carried in the summary but never abort the run; a storage failure rolls
// back the failing batch and is returned with context.
func (s *ingestionService) Run(ctx context.Context) (*domain.LoadSummary, error) {
	s.LogInfo(ctx, "Starting data loading process")

	rawInvoices, err := s.source.ReadInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read invoice batch: %w", err)
	}
	rawItems, err := s.source.ReadLineItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read line item batch: %w", err)
	}

	invoices := CleanInvoices(rawInvoices)
	items := CleanLineItems(rawItems)

	report := ValidateBatches(invoices, items, time.Now())
	if !report.Clean() {
		s.LogWarn(ctx, "Data validation issues found",
			slog.Any("counts", report.Counts),
			slog.Any("sample_missing_invoice_ids", report.MissingInvoiceSamples))
	}

	kept, dropped := FilterLineItems(items, InvoiceIDSet(invoices))
	if dropped > 0 {
		s.LogWarn(ctx, "Filtered out line items with missing invoices",
			slog.Int("dropped", dropped),
			slog.Int("kept", len(kept)),
			slog.Int("original", len(items)))
	}

	start := time.Now()
	invoiceCount, err := s.invoiceRepo.BulkInsertInvoices(ctx, invoices)
	if err != nil {
		s.LogError(ctx, err, "Data loading failed")
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	itemCount, err := s.lineItemRepo.BulkInsertLineItems(ctx, kept)
	if err != nil {
		s.LogError(ctx, err, "Data loading failed")
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}
	elapsed := time.Since(start)

	s.LogInfo(ctx, "Data loading completed",
		slog.Duration("elapsed", elapsed),
		slog.Int64("invoices_loaded", invoiceCount),
		slog.Int64("line_items_loaded", itemCount))

	return &domain.LoadSummary{
		InvoicesLoaded:   invoiceCount,
		LineItemsLoaded:  itemCount,
		LineItemsDropped: dropped,
		Validation:       report,
		Elapsed:          elapsed,
	}, nil
}
