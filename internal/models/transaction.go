package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted form of an obligation.
type Transaction struct {
	ID     int64           `db:"id"`
	Name   string          `db:"name"`
	Date   time.Time       `db:"txn_date"`
	Value  decimal.Decimal `db:"value"` // remaining unpaid amount
	Status string          `db:"status"`
	AuditFields
}
