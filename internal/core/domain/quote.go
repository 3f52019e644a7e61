package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a snapshot of the USD-BRL exchange rate as reported by the provider.
// A quote is produced fresh on every fetch and never cached.
type Quote struct {
	Rate       decimal.Decimal `json:"rate"` // BRL per 1 USD (provider bid)
	ObservedAt time.Time       `json:"observedAt"`
}
