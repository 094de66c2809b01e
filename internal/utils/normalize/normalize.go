// Package normalize coerces raw tabular cell values into well-typed
// fields. Every function is total: malformed input yields a nil (or a
// configured default), never an error, so a bad cell can never fail a
// batch.
package normalize

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// timestampLayouts is the accepted ISO-8601 family, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// textDefaults maps field name to the value substituted for a missing
// cell. Fields not listed default to the empty string.
var textDefaults = map[string]string{
	"coach": "Not assigned",
}

// Timestamp parses raw as an ISO-8601 timestamp. Zone-aware inputs are
// normalized to UTC; naive inputs are taken as already UTC. Unparseable
// or empty input yields nil.
func Timestamp(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			utc := ts.UTC()
			return &utc
		}
	}
	return nil
}

// Date parses raw like Timestamp and truncates the result to midnight
// UTC, yielding a calendar date. Unparseable input yields nil.
func Date(raw string) *time.Time {
	ts := Timestamp(raw)
	if ts == nil {
		return nil
	}
	day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	return &day
}

// Decimal parses raw as a decimal number. Non-numeric or empty input
// yields nil.
func Decimal(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

// Text coerces raw for the named field, substituting the field's default
// when the cell is missing.
func Text(field, raw string) string {
	if strings.TrimSpace(raw) == "" {
		return textDefaults[field]
	}
	return raw
}
