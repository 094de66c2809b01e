package services

import (
	"context"
	"fmt"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	portsrepo "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/repositories"
	portssvc "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/services"
)

// invoiceService implements read access to stored invoices.
type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepository
	lineItemRepo portsrepo.LineItemRepository
}

// NewInvoiceService creates a new invoice read service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, lineItemRepo portsrepo.LineItemRepository) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		lineItemRepo: lineItemRepo,
	}
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (s *invoiceService) GetInvoiceLineItems(ctx context.Context, invoiceID int64) ([]domain.LineItem, error) {
	items, err := s.lineItemRepo.FindLineItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch line items")
		return nil, fmt.Errorf("failed to fetch line items for invoice %d: %w", invoiceID, err)
	}
	return items, nil
}
