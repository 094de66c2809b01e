// Package csvfile reads invoice and line-item batches from CSV files
// into header-keyed raw records for the ingestion pipeline.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MarkChukwuebuka/invoice-etl/internal/apperrors"
	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	portsrepo "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/repositories"
)

// Required columns per batch kind. Presence is a precondition: a file
// missing any of these fails before cleaning starts.
var (
	invoiceColumns = []string{
		"date_created", "invoice_id", "sale_description", "brand_name",
		"coach", "invoice_status_str", "total", "invoice_date",
	}
	lineItemColumns = []string{
		"invoice_id", "item_name", "line_rate", "line_quantity", "created_at",
	}
)

// Reader supplies raw record batches from a pair of CSV files.
type Reader struct {
	invoicesPath  string
	lineItemsPath string
}

// New creates a CSV-backed record source.
func New(invoicesPath, lineItemsPath string) *Reader {
	return &Reader{invoicesPath: invoicesPath, lineItemsPath: lineItemsPath}
}

// Ensure Reader implements portsrepo.RecordSource
var _ portsrepo.RecordSource = (*Reader)(nil)

// ReadInvoices reads the invoice batch.
func (r *Reader) ReadInvoices(ctx context.Context) ([]domain.RawRecord, error) {
	return readFile(r.invoicesPath, invoiceColumns)
}

// ReadLineItems reads the line-item batch.
func (r *Reader) ReadLineItems(ctx context.Context) ([]domain.RawRecord, error) {
	return readFile(r.lineItemsPath, lineItemColumns)
}

// readFile parses one CSV file into header-keyed records. The first row
// is the header; rows shorter than the header leave the missing trailing
// cells empty rather than failing the batch.
func readFile(path string, required []string) ([]domain.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are a cell problem, not a file problem

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if missing := missingColumns(header, required); len(missing) > 0 {
		return nil, fmt.Errorf("%s: %w: %s", path, apperrors.ErrMissingColumn, strings.Join(missing, ", "))
	}

	var records []domain.RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row of %s: %w", path, err)
		}

		record := make(domain.RawRecord, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}

	return records, nil
}

func missingColumns(header, required []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[name] = struct{}{}
	}

	var missing []string
	for _, name := range required {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
