// Package util provides small formatting helpers shared across layers.
package util

import (
	"github.com/shopspring/decimal"
)

// FormatPrice formats a monetary amount for user-facing text, e.g. "NT$120"
// or "NT$85.50". Whole amounts drop the fractional part.
func FormatPrice(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return "NT$" + amount.StringFixed(0)
	}

	return "NT$" + amount.StringFixed(2)
}
