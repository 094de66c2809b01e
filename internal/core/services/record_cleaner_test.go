package services_test

import (
	"testing"
	"time"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	"github.com/MarkChukwuebuka/invoice-etl/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanInvoices(t *testing.T) {
	rows := []domain.RawRecord{
		{
			"date_created":       "2024-01-10T09:00:00Z",
			"invoice_id":         "101",
			"sale_description":   "Quarterly plan",
			"brand_name":         "Acme",
			"coach":              "Jordan",
			"invoice_status_str": "paid",
			"total":              "150.00",
			"invoice_date":       "2024-01-10",
		},
		{
			// Every optional cell missing or malformed
			"date_created":       "yesterday",
			"invoice_id":         "102",
			"sale_description":   "",
			"brand_name":         "",
			"coach":              "",
			"invoice_status_str": "open",
			"total":              "abc",
			"invoice_date":       "",
		},
	}

	invoices := services.CleanInvoices(rows)
	require.Len(t, invoices, 2)

	first := invoices[0]
	assert.Equal(t, int64(101), first.InvoiceID)
	require.NotNil(t, first.DateCreated)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), *first.DateCreated)
	assert.Equal(t, "Quarterly plan", first.SaleDescription)
	assert.Equal(t, "Jordan", first.Coach)
	assert.Equal(t, "paid", first.InvoiceStatus)
	require.NotNil(t, first.Total)
	assert.True(t, first.Total.Equal(decimal.RequireFromString("150.00")))
	require.NotNil(t, first.InvoiceDate)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *first.InvoiceDate)

	second := invoices[1]
	assert.Equal(t, int64(102), second.InvoiceID)
	assert.Nil(t, second.DateCreated)
	assert.Equal(t, "", second.SaleDescription)
	assert.Equal(t, "", second.BrandName)
	assert.Equal(t, "Not assigned", second.Coach)
	assert.Nil(t, second.Total)
	assert.Nil(t, second.InvoiceDate)
}

func TestCleanLineItems(t *testing.T) {
	rows := []domain.RawRecord{
		{
			"invoice_id":    "101",
			"item_name":     "Shipping fee",
			"line_rate":     "10",
			"line_quantity": "2",
			"created_at":    "2024-01-10T09:05:00Z",
		},
		{
			"invoice_id":    "101",
			"item_name":     "",
			"line_rate":     "oops",
			"line_quantity": "",
			"created_at":    "",
		},
	}

	items := services.CleanLineItems(rows)
	require.Len(t, items, 2)

	assert.Equal(t, int64(101), items[0].InvoiceID)
	assert.Equal(t, "Shipping fee", items[0].ItemName)
	assert.Equal(t, domain.CategoryShipping, items[0].Category)
	require.NotNil(t, items[0].LineRate)
	assert.True(t, items[0].LineRate.Equal(decimal.NewFromInt(10)))

	// Missing name classifies as supplement, bad numerics become nil
	assert.Equal(t, "", items[1].ItemName)
	assert.Equal(t, domain.CategorySupplement, items[1].Category)
	assert.Nil(t, items[1].LineRate)
	assert.Nil(t, items[1].LineQuantity)
	assert.Nil(t, items[1].CreatedAt)
}

func TestClean_PreservesOrderAndCardinality(t *testing.T) {
	var rows []domain.RawRecord
	for i := 1; i <= 50; i++ {
		rows = append(rows, domain.RawRecord{
			"invoice_id":         decimal.NewFromInt(int64(i)).String(),
			"invoice_status_str": "open",
		})
	}

	invoices := services.CleanInvoices(rows)
	require.Len(t, invoices, len(rows))
	for i, inv := range invoices {
		assert.Equal(t, int64(i+1), inv.InvoiceID)
	}
}

func TestCleanInvoices_SpreadsheetStyleIDs(t *testing.T) {
	invoices := services.CleanInvoices([]domain.RawRecord{
		{"invoice_id": "103.0", "invoice_status_str": "open"},
		{"invoice_id": "garbage", "invoice_status_str": "open"},
	})
	require.Len(t, invoices, 2)
	assert.Equal(t, int64(103), invoices[0].InvoiceID)
	assert.Equal(t, int64(0), invoices[1].InvoiceID)
}
