package services

import (
	"time"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
)

// missingRefSampleCap bounds how many offending invoice IDs ride along in
// the validation report for log output.
const missingRefSampleCap = 5

// ValidateBatches runs the diagnostic data-quality checks over cleaned
// batches. It is a pure function of its inputs (and the clock, for the
// future-date check): re-running it on unchanged batches yields an
// identical report. Findings are reported, never enforced; only non-zero
// counts are retained.
func ValidateBatches(invoices []domain.Invoice, items []domain.LineItem, now time.Time) domain.ValidationReport {
	report := domain.ValidationReport{Counts: make(map[string]int)}

	validIDs := make(map[int64]struct{}, len(invoices))
	for _, inv := range invoices {
		validIDs[inv.InvoiceID] = struct{}{}
	}

	missingRefs := 0
	seenMissing := make(map[int64]struct{})
	for _, item := range items {
		if _, ok := validIDs[item.InvoiceID]; ok {
			continue
		}
		missingRefs++
		if _, seen := seenMissing[item.InvoiceID]; !seen && len(report.MissingInvoiceSamples) < missingRefSampleCap {
			report.MissingInvoiceSamples = append(report.MissingInvoiceSamples, item.InvoiceID)
		}
		seenMissing[item.InvoiceID] = struct{}{}
	}

	negativeTotals := 0
	futureDates := 0
	for _, inv := range invoices {
		if inv.Total != nil && !inv.Total.IsPositive() {
			negativeTotals++
		}
		if inv.InvoiceDate != nil && inv.InvoiceDate.After(now) {
			futureDates++
		}
	}

	negativeRates := 0
	negativeQuantities := 0
	for _, item := range items {
		if item.LineRate != nil && !item.LineRate.IsPositive() {
			negativeRates++
		}
		if item.LineQuantity != nil && !item.LineQuantity.IsPositive() {
			negativeQuantities++
		}
	}

	setNonZero(report.Counts, domain.CheckMissingInvoiceIDs, missingRefs)
	setNonZero(report.Counts, domain.CheckNegativeTotals, negativeTotals)
	setNonZero(report.Counts, domain.CheckNegativeRates, negativeRates)
	setNonZero(report.Counts, domain.CheckNegativeQuantities, negativeQuantities)
	setNonZero(report.Counts, domain.CheckFutureDates, futureDates)

	return report
}

func setNonZero(counts map[string]int, check string, n int) {
	if n > 0 {
		counts[check] = n
	}
}
