package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledger_reconciler/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the settlement state of an obligation.
type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "PENDING"
	TransactionPaid     TransactionStatus = "PAID"
	TransactionRejected TransactionStatus = "REJECTED"
)

// IsValid reports whether s is one of the known statuses.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionPending, TransactionPaid, TransactionRejected:
		return true
	}
	return false
}

// ParseTransactionStatus parses a status name, case-insensitively.
func ParseTransactionStatus(raw string) (TransactionStatus, error) {
	s := TransactionStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: invalid transaction status %q", apperrors.ErrValidation, raw)
	}
	return s, nil
}

// Transaction is a dated obligation to pay. Value holds the amount still unpaid.
type Transaction struct {
	ID     int64             `json:"id"`
	Name   string            `json:"name"`
	Date   time.Time         `json:"date"`
	Value  decimal.Decimal   `json:"value"`
	Status TransactionStatus `json:"status"`
	AuditFields
}

// IsSettled reports whether the transaction reached the terminal PAID state.
func (t Transaction) IsSettled() bool {
	return t.Status == TransactionPaid
}

// NormalizeDate converts the date to UTC. Every write path calls it.
func (t *Transaction) NormalizeDate() {
	t.Date = t.Date.UTC()
}

// Validate checks the field-level invariants of a transaction.
func (t Transaction) Validate() error {
	if t.Value.IsNegative() {
		return fmt.Errorf("%w: transaction value must not be negative", apperrors.ErrValidation)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: invalid transaction status %q", apperrors.ErrValidation, t.Status)
	}
	if t.Status == TransactionPaid && !t.Value.IsZero() {
		return fmt.Errorf("%w: a paid transaction must have a zero value", apperrors.ErrValidation)
	}
	return nil
}

// EnsureMutable guards update and delete: PAID transactions are immutable.
func (t Transaction) EnsureMutable(action string) error {
	if t.IsSettled() {
		return fmt.Errorf("%w: can't %s a paid transaction (id %d)", apperrors.ErrConflict, action, t.ID)
	}
	return nil
}

// Overwrite replaces the user-editable fields. An explicit move to PAID settles the
// remaining value so the PAID invariant keeps holding.
func (t *Transaction) Overwrite(name string, date time.Time, value decimal.Decimal, status TransactionStatus) {
	t.Name = name
	t.Date = date.UTC()
	t.Value = value
	t.Status = status
	if status == TransactionPaid {
		t.Value = decimal.Zero
	}
}
