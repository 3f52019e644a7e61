package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency codes supported by the conversion pipeline.
const (
	CurrencyUSD = "USD"
	CurrencyBRL = "BRL"
)

// ConversionScale is the number of decimal places converted amounts are rounded to.
const ConversionScale int32 = 4

// Limits on accepted amounts. Checked by exponent first so oversized
// values are rejected without being expanded.
const (
	MaxAmountExponent int32 = 15
	MinAmountExponent int32 = -18
)

// MaxAmount is the largest amount accepted for conversion.
var MaxAmount = decimal.New(1, MaxAmountExponent)

// Direction tells which currency is the source and which is the target.
type Direction string

const (
	BRLToUSD Direction = "BRL_TO_USD"
	USDToBRL Direction = "USD_TO_BRL"
)

// ParseDirection accepts BRL_TO_USD / USD_TO_BRL in any case, with '-' or '_' separators.
func ParseDirection(s string) (Direction, error) {
	normalized := Direction(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("unknown conversion direction %q", s)
}

// IsValid reports whether d is one of the supported directions.
func (d Direction) IsValid() bool {
	return d == BRLToUSD || d == USDToBRL
}

// Source returns the currency the amount is expressed in.
func (d Direction) Source() string {
	if d == USDToBRL {
		return CurrencyUSD
	}
	return CurrencyBRL
}

// Target returns the currency the amount is converted into.
func (d Direction) Target() string {
	if d == USDToBRL {
		return CurrencyBRL
	}
	return CurrencyUSD
}

// ConversionRequest is a transient request to convert an amount; it is never persisted.
type ConversionRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Direction Direction       `json:"direction" validate:"required,oneof=BRL_TO_USD USD_TO_BRL"`
	User      string          `json:"user" validate:"required"`
}

// CheckAmountBounds reports whether amount fits within MaxAmount and has at
// most -MinAmountExponent decimal places.
func CheckAmountBounds(amount decimal.Decimal) error {
	exp := amount.Exponent()
	if exp < MinAmountExponent {
		return fmt.Errorf("amount must have at most %d decimal places", -MinAmountExponent)
	}
	if exp > MaxAmountExponent || amount.GreaterThan(MaxAmount) {
		return fmt.Errorf("amount must not exceed %s", MaxAmount.String())
	}
	return nil
}

// ConversionResult pairs a converted amount with the transaction that recorded it.
type ConversionResult struct {
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Transaction     Transaction     `json:"transaction"`
}

// Convert applies rate (BRL per USD) to amount in direction d and rounds the result
// half-up to ConversionScale places. rate must be positive.
func Convert(amount, rate decimal.Decimal, d Direction) decimal.Decimal {
	if d == BRLToUSD {
		return amount.DivRound(rate, ConversionScale)
	}
	return amount.Mul(rate).Round(ConversionScale)
}
