package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/alonilk2/accounting-sub001/internal/domain/entity"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"150", "150.00"},
		{"1240.5", "1,240.50"},
		{"-96.125", "-96.13"},
		// Past float64 precision; the printed digits must stay exact.
		{"12345678901234567.89", "12,345,678,901,234,567.89"},
	}
	for _, c := range cases {
		got := formatAmount(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "amount %s", c.in)
	}
}

func TestRowActions_StatusGating(t *testing.T) {
	paid := entity.DocumentSummary{Status: entity.StatusPaid}
	cancelled := entity.DocumentSummary{Status: entity.StatusCancelled}

	assert.Equal(t, "print,cancel,delete", rowActions(paid))
	assert.Equal(t, "print,delete", rowActions(cancelled))
}
