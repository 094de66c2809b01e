package mapping

import (
	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	"github.com/MarkChukwuebuka/invoice-etl/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:       d.InvoiceID,
		DateCreated:     d.DateCreated,
		SaleDescription: d.SaleDescription,
		BrandName:       d.BrandName,
		Coach:           d.Coach,
		InvoiceStatus:   d.InvoiceStatus,
		Total:           d.Total,
		InvoiceDate:     d.InvoiceDate,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:       m.InvoiceID,
		DateCreated:     m.DateCreated,
		SaleDescription: m.SaleDescription,
		BrandName:       m.BrandName,
		Coach:           m.Coach,
		InvoiceStatus:   m.InvoiceStatus,
		Total:           m.Total,
		InvoiceDate:     m.InvoiceDate,
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to a slice of domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}

// ToModelLineItem converts a domain LineItem to a model LineItem
func ToModelLineItem(d domain.LineItem) models.LineItem {
	return models.LineItem{
		InvoiceID:    d.InvoiceID,
		ItemName:     d.ItemName,
		LineRate:     d.LineRate,
		LineQuantity: d.LineQuantity,
		CreatedAt:    d.CreatedAt,
		Category:     string(d.Category),
	}
}

// ToDomainLineItem converts a model LineItem to a domain LineItem
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		InvoiceID:    m.InvoiceID,
		ItemName:     m.ItemName,
		LineRate:     m.LineRate,
		LineQuantity: m.LineQuantity,
		CreatedAt:    m.CreatedAt,
		Category:     domain.Category(m.Category),
	}
}

// ToDomainLineItemSlice converts a slice of model LineItems to a slice of domain LineItems
func ToDomainLineItemSlice(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
