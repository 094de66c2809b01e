package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	portsrepo "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/repositories"
	portssvc "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/services"
)

// reportingService implements the aggregate report reads.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: repo}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// CategoryReport returns item count and amount totals per category.
func (s *reportingService) CategoryReport(ctx context.Context) ([]domain.CategoryTotal, error) {
	totals, err := s.reportingRepo.GetCategoryTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve category totals")
		return nil, fmt.Errorf("failed to retrieve category totals: %w", err)
	}
	s.LogInfo(ctx, "Category report generated", slog.Int("row_count", len(totals)))
	return totals, nil
}

// DiscrepancyReport returns invoices whose stated total differs from the
// sum of their line items by strictly more than domain.DiscrepancyTolerance.
func (s *reportingService) DiscrepancyReport(ctx context.Context) ([]domain.InvoiceDiscrepancy, error) {
	rows, err := s.reportingRepo.GetInvoiceDiscrepancies(ctx, domain.DiscrepancyTolerance)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve discrepancy report")
		return nil, fmt.Errorf("failed to retrieve discrepancy report: %w", err)
	}
	s.LogInfo(ctx, "Discrepancy report generated", slog.Int("row_count", len(rows)))
	return rows, nil
}
