package models

import "github.com/shopspring/decimal"

// Payment is the persisted form of received funds.
type Payment struct {
	ID     int64           `db:"id"`
	Value  decimal.Decimal `db:"value"` // unapplied amount
	Status string          `db:"status"`
	AuditFields
}
