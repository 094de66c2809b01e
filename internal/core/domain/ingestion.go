package domain

import "time"

// RawRecord is one pre-parsed tabular row, keyed by column name.
// Missing cells are empty strings; the cleaner decides what that means
// per field.
type RawRecord map[string]string

// Get returns the named column's value, or "" when absent.
func (r RawRecord) Get(column string) string {
	return r[column]
}

// LoadSummary is what a pipeline run reports back to its caller.
type LoadSummary struct {
	InvoicesLoaded   int64            `json:"invoicesLoaded"`
	LineItemsLoaded  int64            `json:"lineItemsLoaded"`
	LineItemsDropped int              `json:"lineItemsDropped"`
	Validation       ValidationReport `json:"validation"`
	Elapsed          time.Duration    `json:"elapsed"`
}
