package models

import "time"

// Transaction is the storage representation of a recorded conversion.
// ID is auto-assigned by the store; Direction holds BRL_TO_USD or USD_TO_BRL.
type Transaction struct {
	ID         int64     `db:"id" json:"id"`
	UserName   string    `db:"user_name" json:"userName"`
	Direction  string    `db:"direction" json:"direction"`
	OccurredAt time.Time `db:"occurred_at" json:"occurredAt"`
}
