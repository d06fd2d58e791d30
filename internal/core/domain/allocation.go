package domain

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"
)

// TransactionSettlement is the outcome of settling a new transaction against
// the pending payment surplus.
type TransactionSettlement struct {
	// Transaction is the new transaction with its residual value and status.
	Transaction Transaction
	// Payments lists the payments that were drawn from, in consumption order.
	Payments []Payment
}

// PaymentAllocation is the outcome of applying incoming funds to pending debt.
type PaymentAllocation struct {
	// Settled lists the transactions that became PAID, oldest first.
	Settled []Transaction
	// Residual is the payment to record for the unspent funds, or nil when the
	// funds were consumed exactly.
	Residual *Payment
}

// SettleTransaction spends pending payments, oldest created first, on a newly
// created transaction. A payment that covers less than the outstanding value is
// consumed fully; the first one that covers more keeps its remainder and stays
// PENDING. The transaction ends PAID when nothing is left to pay.
func SettleTransaction(txn Transaction, pending []Payment) TransactionSettlement {
	txn.NormalizeDate()
	remaining := txn.Value

	if remaining.IsZero() {
		txn.Status = TransactionPaid
		return TransactionSettlement{Transaction: txn}
	}

	ordered := slices.Clone(pending)
	slices.SortStableFunc(ordered, func(a, b Payment) int { return cmp.Compare(a.ID, b.ID) })

	touched := make([]Payment, 0, len(ordered))
	for _, p := range ordered {
		if !remaining.IsPositive() {
			break
		}
		if p.Value.LessThanOrEqual(remaining) {
			remaining = remaining.Sub(p.Value)
			p.Value = decimal.Zero
			p.Status = PaymentCompleted
		} else {
			p.Value = p.Value.Sub(remaining)
			remaining = decimal.Zero
		}
		touched = append(touched, p)
	}

	txn.Value = remaining
	if remaining.IsZero() {
		txn.Status = TransactionPaid
	}
	return TransactionSettlement{Transaction: txn, Payments: touched}
}

// AllocatePayment applies value to pending transactions in ascending date order.
// Each transaction the remaining funds can cover in full becomes PAID. Allocation
// stops at the first transaction the funds cannot cover: that transaction is left
// untouched and the remaining funds become a new standing payment. Funds left
// after every pending transaction is paid also become a new payment.
func AllocatePayment(value decimal.Decimal, pending []Transaction) PaymentAllocation {
	if len(pending) == 0 {
		p := NewPayment(value)
		return PaymentAllocation{Residual: &p}
	}

	ordered := slices.Clone(pending)
	slices.SortStableFunc(ordered, func(a, b Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	var result PaymentAllocation
	remaining := value
	for _, t := range ordered {
		if !remaining.IsPositive() {
			break
		}
		if remaining.GreaterThanOrEqual(t.Value) {
			remaining = remaining.Sub(t.Value)
			t.Value = decimal.Zero
			t.Status = TransactionPaid
			result.Settled = append(result.Settled, t)
			continue
		}
		p := NewPayment(remaining)
		result.Residual = &p
		return result
	}

	if remaining.IsPositive() {
		p := NewPayment(remaining)
		result.Residual = &p
	}
	return result
}

// AllocationResult summarizes one allocation run after it was persisted.
type AllocationResult struct {
	// TransactionID is the id of the created transaction, set by transaction creation only.
	TransactionID *int64 `json:"transactionId,omitempty"`
	// SettledTransactionIDs lists transactions that became PAID during a payment run.
	SettledTransactionIDs []int64 `json:"settledTransactionIds"`
	// TouchedPaymentIDs lists payments drawn from during transaction creation.
	TouchedPaymentIDs []int64 `json:"touchedPaymentIds"`
	// CreatedPayment is the payment stored for unspent funds, if any.
	CreatedPayment *Payment `json:"createdPayment,omitempty"`
}

// LogAttrs flattens the result for structured logging.
func (r AllocationResult) LogAttrs() []any {
	attrs := []any{
		slog.Any("settled_transaction_ids", r.SettledTransactionIDs),
		slog.Any("touched_payment_ids", r.TouchedPaymentIDs),
	}
	if r.TransactionID != nil {
		attrs = append(attrs, slog.Int64("transaction_id", *r.TransactionID))
	}
	if r.CreatedPayment != nil {
		attrs = append(attrs,
			slog.Int64("created_payment_id", r.CreatedPayment.ID),
			slog.String("created_payment_value", r.CreatedPayment.Value.String()),
		)
	}
	return attrs
}
