package util

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{name: "WholeAmountDropsFraction", amount: decimal.NewFromInt(120), expected: "NT$120"},
		{name: "FractionalAmountKeepsTwoDigits", amount: decimal.RequireFromString("85.5"), expected: "NT$85.50"},
		{name: "Zero", amount: decimal.Zero, expected: "NT$0"},
		{name: "SubDollarAmount", amount: decimal.RequireFromString("0.25"), expected: "NT$0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPrice(tt.amount))
		})
	}
}
