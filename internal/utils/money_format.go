package utils

import (
	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with the fixed two decimal places
// used for GBP throughout the API.
// Example: 12.3 returns "12.30"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatGBP renders an amount with the currency symbol for logs and
// human-facing messages.
func FormatGBP(amount decimal.Decimal) string {
	return "£" + FormatAmount(amount)
}
