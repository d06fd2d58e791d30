package domain

import "time"

// AuditFields holds the store-stamped timestamps shared by ledger entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
