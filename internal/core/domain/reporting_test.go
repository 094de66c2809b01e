package domain_test

import (
	"testing"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceDiscrepancy_ExceedsTolerance(t *testing.T) {
	tests := []struct {
		name       string
		difference string
		want       bool
	}{
		{name: "zero difference", difference: "0.00", want: false},
		{name: "exactly at tolerance", difference: "0.01", want: false},
		{name: "just above tolerance", difference: "0.011", want: true},
		{name: "negative just above tolerance", difference: "-0.011", want: true},
		{name: "negative at tolerance", difference: "-0.01", want: false},
		{name: "small rounding drift", difference: "0.015", want: true},
		{name: "large difference", difference: "12.50", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.InvoiceDiscrepancy{
				Difference: decimal.RequireFromString(tt.difference),
			}
			assert.Equal(t, tt.want, d.ExceedsTolerance())
		})
	}
}
