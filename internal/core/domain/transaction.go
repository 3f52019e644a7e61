package domain

import "time"

// Transaction is the persisted record of one completed conversion.
// The ID and OccurredAt are assigned by the store at insertion time.
type Transaction struct {
	ID         int64     `json:"id"`         // Primary Key, store-assigned, monotonically increasing
	User       string    `json:"user"`       // Name of the user that requested the conversion (Not Null)
	Direction  Direction `json:"direction"`  // BRL_TO_USD or USD_TO_BRL (Not Null)
	OccurredAt time.Time `json:"occurredAt"` // Set by the store when the record is appended
}
