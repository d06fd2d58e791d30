package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_reconciler/internal/apperrors"
	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_reconciler/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_reconciler/internal/core/ports/services"
	"github.com/SscSPs/ledger_reconciler/internal/dto"
	"github.com/shopspring/decimal"
)

// ledgerService implements the LedgerSvcFacade interface. Every write runs in a
// single store transaction; any failure rolls all of its writes back.
type ledgerService struct {
	BaseService
	store portsrepo.LedgerStore
}

// ServiceOption is a functional option for configuring the ledger service
type ServiceOption func(*ledgerService)

// WithClock overrides the clock used for audit timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(store portsrepo.LedgerStore, options ...ServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{store: store}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// CreateTransaction records a new obligation. A PENDING transaction is first
// settled against the pending payment surplus, oldest payment first; a zero
// value PENDING transaction becomes PAID. An explicit REJECTED or PAID status is
// stored as given.
func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	status := domain.TransactionPending
	if strings.TrimSpace(req.Status) != "" {
		parsed, err := domain.ParseTransactionStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}
	if req.Value == nil {
		return nil, apperrors.NewValidationError("value is required")
	}

	now := s.Now()
	txn := domain.Transaction{
		Name:   strings.TrimSpace(req.Name),
		Date:   req.Date,
		Value:  *req.Value,
		Status: status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	txn.NormalizeDate()
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to begin transaction creation")
	}
	defer tx.Rollback(ctx)

	if err := tx.LockLedger(ctx); err != nil {
		return nil, s.storeError(ctx, err, "failed to lock ledger")
	}

	result := domain.AllocationResult{}
	if txn.Status == domain.TransactionPending {
		pending, err := tx.FindPendingPaymentsForUpdate(ctx)
		if err != nil {
			return nil, s.storeError(ctx, err, "failed to load pending payments")
		}

		s.LogDebug(ctx, "Loaded pending payments", slog.Int("count", len(pending)))

		settlement := domain.SettleTransaction(txn, pending)
		for _, p := range settlement.Payments {
			p.LastUpdatedAt = now
			if err := tx.UpdatePayment(ctx, p); err != nil {
				return nil, s.storeError(ctx, err, fmt.Sprintf("failed to update payment %d", p.ID))
			}
			result.TouchedPaymentIDs = append(result.TouchedPaymentIDs, p.ID)
		}
		txn = settlement.Transaction
	}

	saved, err := tx.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to save transaction")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, s.storeError(ctx, err, "failed to commit transaction creation")
	}

	result.TransactionID = &saved.ID
	s.LogInfo(ctx, "Transaction created",
		append(result.LogAttrs(),
			slog.String("status", string(saved.Status)),
			slog.String("remaining_value", saved.Value.String()))...)
	return saved, nil
}

// MakePayment applies value to pending transactions in date order. Unspent funds
// are stored as a new payment.
func (s *ledgerService) MakePayment(ctx context.Context, value decimal.Decimal) (*domain.AllocationResult, error) {
	if value.IsNegative() {
		return nil, apperrors.NewValidationError("payment value must not be negative")
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to begin payment")
	}
	defer tx.Rollback(ctx)

	if err := tx.LockLedger(ctx); err != nil {
		return nil, s.storeError(ctx, err, "failed to lock ledger")
	}

	pending, err := tx.FindPendingTransactionsForUpdate(ctx)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to load pending transactions")
	}

	s.LogDebug(ctx, "Loaded pending transactions", slog.Int("count", len(pending)))

	now := s.Now()
	allocation := domain.AllocatePayment(value, pending)
	result := &domain.AllocationResult{SettledTransactionIDs: make([]int64, 0, len(allocation.Settled))}

	for _, t := range allocation.Settled {
		t.LastUpdatedAt = now
		if err := tx.UpdateTransaction(ctx, t); err != nil {
			return nil, s.storeError(ctx, err, fmt.Sprintf("failed to settle transaction %d", t.ID))
		}
		result.SettledTransactionIDs = append(result.SettledTransactionIDs, t.ID)
	}

	if allocation.Residual != nil {
		residual := *allocation.Residual
		residual.CreatedAt = now
		residual.LastUpdatedAt = now
		saved, err := tx.SavePayment(ctx, residual)
		if err != nil {
			return nil, s.storeError(ctx, err, "failed to save payment")
		}
		result.CreatedPayment = saved
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, s.storeError(ctx, err, "failed to commit payment")
	}

	s.LogInfo(ctx, "Payment applied", append(result.LogAttrs(), slog.String("payment_value", value.String()))...)
	return result, nil
}

// UpdateTransaction overwrites name, date, value and status of a transaction
// that is not yet PAID. It does not re-run allocation.
func (s *ledgerService) UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	status, err := domain.ParseTransactionStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if req.Value == nil {
		return nil, apperrors.NewValidationError("value is required")
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to begin transaction update")
	}
	defer tx.Rollback(ctx)

	current, err := tx.FindTransactionByIDForUpdate(ctx, id)
	if err != nil {
		return nil, s.storeError(ctx, err, fmt.Sprintf("failed to find transaction %d", id))
	}
	if err := current.EnsureMutable("update"); err != nil {
		return nil, err
	}

	updated := *current
	updated.Overwrite(strings.TrimSpace(req.Name), req.Date, *req.Value, status)
	updated.LastUpdatedAt = s.Now()
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := tx.UpdateTransaction(ctx, updated); err != nil {
		return nil, s.storeError(ctx, err, fmt.Sprintf("failed to update transaction %d", id))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, s.storeError(ctx, err, "failed to commit transaction update")
	}

	s.LogInfo(ctx, "Transaction updated", slog.Int64("transaction_id", id), slog.String("status", string(updated.Status)))
	return &updated, nil
}

// DeleteTransaction removes a transaction that is not yet PAID.
func (s *ledgerService) DeleteTransaction(ctx context.Context, id int64) error {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return s.storeError(ctx, err, "failed to begin transaction delete")
	}
	defer tx.Rollback(ctx)

	current, err := tx.FindTransactionByIDForUpdate(ctx, id)
	if err != nil {
		return s.storeError(ctx, err, fmt.Sprintf("failed to find transaction %d", id))
	}
	if err := current.EnsureMutable("delete"); err != nil {
		return err
	}

	if err := tx.DeleteTransaction(ctx, id); err != nil {
		return s.storeError(ctx, err, fmt.Sprintf("failed to delete transaction %d", id))
	}
	if err := tx.Commit(ctx); err != nil {
		return s.storeError(ctx, err, "failed to commit transaction delete")
	}

	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", id))
	return nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	txn, err := s.store.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, s.storeError(ctx, err, fmt.Sprintf("failed to get transaction %d", id))
	}
	return txn, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) (*domain.Page[domain.Transaction], error) {
	page = normalizePage(page)
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if len(page.Sort) == 0 {
		page.Sort = domain.DefaultTransactionSort
	}

	items, total, err := s.store.ListTransactions(ctx, filter, page)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to list transactions")
	}
	result := domain.NewPage(items, page, total)
	return &result, nil
}

func (s *ledgerService) ListPayments(ctx context.Context, status *domain.PaymentStatus, page domain.PageRequest) (*domain.Page[domain.Payment], error) {
	page = normalizePage(page)
	if err := page.Validate(); err != nil {
		return nil, err
	}

	items, total, err := s.store.ListPayments(ctx, status, page)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to list payments")
	}
	result := domain.NewPage(items, page, total)
	return &result, nil
}

// storeError wraps err with msg and logs it unless it is a client error.
func (s *ledgerService) storeError(ctx context.Context, err error, msg string) error {
	if !apperrors.IsClientError(err) {
		s.LogError(ctx, err, "Ledger store failure", slog.String("operation", msg))
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func normalizePage(page domain.PageRequest) domain.PageRequest {
	if page.Page < 0 {
		page.Page = 0
	}
	if page.Size <= 0 {
		page.Size = domain.DefaultPageSize
	}
	return page
}
