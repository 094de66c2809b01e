package domain

// Validation check names, matching the keys reported by the original loader.
const (
	CheckMissingInvoiceIDs  = "missing_invoice_ids"
	CheckNegativeTotals     = "negative_totals"
	CheckNegativeRates      = "negative_rates"
	CheckNegativeQuantities = "negative_quantities"
	CheckFutureDates        = "future_dates"
)

// ValidationReport summarizes data-quality findings over a batch pair.
// Counts holds only non-zero checks. The report is diagnostic: findings
// never block a load.
type ValidationReport struct {
	Counts map[string]int `json:"counts"`
	// MissingInvoiceSamples holds up to five invoice IDs referenced by
	// line items but absent from the invoice batch, for log output.
	MissingInvoiceSamples []int64 `json:"missingInvoiceSamples,omitempty"`
}

// Clean reports whether no check fired.
func (r ValidationReport) Clean() bool {
	return len(r.Counts) == 0
}
