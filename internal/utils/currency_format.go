package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision rounds half-up to precision places and always prints
// exactly that many decimals.
// Example: 20 with precision 4 returns "20.0000"
// Example: 1.95184 with precision 4 returns "1.9518"
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}
