package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_reconciler/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the application state of received funds.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
)

// IsValid reports whether s is one of the known statuses.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentPending || s == PaymentCompleted
}

// ParsePaymentStatus parses a status name, case-insensitively.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	s := PaymentStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: invalid payment status %q", apperrors.ErrValidation, raw)
	}
	return s, nil
}

// Payment holds received funds. Value is the part not yet applied to any transaction.
type Payment struct {
	ID     int64           `json:"id"`
	Value  decimal.Decimal `json:"value"`
	Status PaymentStatus   `json:"status"`
	AuditFields
}

// NewPayment builds an unsaved payment for value. A zero payment is born COMPLETED.
func NewPayment(value decimal.Decimal) Payment {
	status := PaymentPending
	if value.IsZero() {
		status = PaymentCompleted
	}
	return Payment{Value: value, Status: status}
}

// Validate checks the field-level invariants of a payment.
func (p Payment) Validate() error {
	if p.Value.IsNegative() {
		return fmt.Errorf("%w: payment value must not be negative", apperrors.ErrValidation)
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("%w: invalid payment status %q", apperrors.ErrValidation, p.Status)
	}
	if p.Status == PaymentCompleted && !p.Value.IsZero() {
		return fmt.Errorf("%w: a completed payment must have a zero value", apperrors.ErrValidation)
	}
	return nil
}
