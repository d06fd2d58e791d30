package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_reconciler/internal/apperrors"
	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_reconciler/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_reconciler/internal/models"
	"github.com/SscSPs/ledger_reconciler/internal/repositories/database/querybuilder"
	"github.com/SscSPs/ledger_reconciler/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var dialect = querybuilder.Postgres

// PgxLedgerRepository stores transactions and payments in PostgreSQL.
type PgxLedgerRepository struct {
	BaseRepository
	lockKey int64
}

func newPgxLedgerRepository(pool *pgxpool.Pool, lockKey int64) portsrepo.LedgerStore {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		lockKey:        lockKey,
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerStore
var _ portsrepo.LedgerStore = (*PgxLedgerRepository)(nil)

// Begin starts a store transaction over the ledger.
func (r *PgxLedgerRepository) Begin(ctx context.Context) (portsrepo.LedgerTx, error) {
	tx, err := r.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return &pgxLedgerTx{base: &r.BaseRepository, tx: tx, lockKey: r.lockKey}, nil
}

func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	return findTransaction(ctx, r.Pool, querybuilder.TransactionByID(dialect, id, false), id)
}

func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, int64, error) {
	list, count := querybuilder.TransactionList(dialect, filter, page)

	var total int64
	if err := r.Pool.QueryRow(ctx, count.SQL, count.Args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}

	txns, err := queryTransactions(ctx, r.Pool, list)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

func (r *PgxLedgerRepository) ListPayments(ctx context.Context, status *domain.PaymentStatus, page domain.PageRequest) ([]domain.Payment, int64, error) {
	list, count := querybuilder.PaymentList(dialect, status, page)

	var total int64
	if err := r.Pool.QueryRow(ctx, count.SQL, count.Args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count payments", err)
	}

	payments, err := queryPayments(ctx, r.Pool, list)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// pgxLedgerTx is one open PostgreSQL transaction.
type pgxLedgerTx struct {
	base    *BaseRepository
	tx      pgx.Tx
	lockKey int64
}

var _ portsrepo.LedgerTx = (*pgxLedgerTx)(nil)

// LockLedger takes a transaction-scoped advisory lock, so transaction creation
// and payment runs execute one at a time across all application instances.
func (t *pgxLedgerTx) LockLedger(ctx context.Context) error {
	if _, err := t.tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", t.lockKey); err != nil {
		return apperrors.NewAppError(500, "failed to acquire ledger lock", err)
	}
	return nil
}

func (t *pgxLedgerTx) FindPendingPaymentsForUpdate(ctx context.Context) ([]domain.Payment, error) {
	return queryPayments(ctx, t.tx, querybuilder.PendingPaymentsForUpdate(dialect))
}

func (t *pgxLedgerTx) FindPendingTransactionsForUpdate(ctx context.Context) ([]domain.Transaction, error) {
	return queryTransactions(ctx, t.tx, querybuilder.PendingTransactionsForUpdate(dialect))
}

func (t *pgxLedgerTx) FindTransactionByIDForUpdate(ctx context.Context, id int64) (*domain.Transaction, error) {
	return findTransaction(ctx, t.tx, querybuilder.TransactionByID(dialect, id, true), id)
}

func (t *pgxLedgerTx) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	q := querybuilder.InsertTransaction(dialect, m.Name, m.Date, m.Value, m.Status, m.CreatedAt, m.LastUpdatedAt)
	if err := t.tx.QueryRow(ctx, q.SQL, q.Args...).Scan(&m.ID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert transaction", err)
	}
	saved := mapping.ToDomainTransaction(m)
	return &saved, nil
}

func (t *pgxLedgerTx) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	q := querybuilder.UpdateTransaction(dialect, m.ID, m.Name, m.Date, m.Value, m.Status, m.LastUpdatedAt)
	tag, err := t.tx.Exec(ctx, q.SQL, q.Args...)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update transaction %d", m.ID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("transaction %d", m.ID))
	}
	return nil
}

func (t *pgxLedgerTx) DeleteTransaction(ctx context.Context, id int64) error {
	q := querybuilder.DeleteTransaction(dialect, id)
	tag, err := t.tx.Exec(ctx, q.SQL, q.Args...)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete transaction %d", id), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("transaction %d", id))
	}
	return nil
}

func (t *pgxLedgerTx) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	m := mapping.ToModelPayment(payment)
	q := querybuilder.InsertPayment(dialect, m.Value, m.Status, m.CreatedAt, m.LastUpdatedAt)
	if err := t.tx.QueryRow(ctx, q.SQL, q.Args...).Scan(&m.ID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payment", err)
	}
	saved := mapping.ToDomainPayment(m)
	return &saved, nil
}

func (t *pgxLedgerTx) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	q := querybuilder.UpdatePayment(dialect, m.ID, m.Value, m.Status, m.LastUpdatedAt)
	tag, err := t.tx.Exec(ctx, q.SQL, q.Args...)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update payment %d", m.ID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("payment %d", m.ID))
	}
	return nil
}

func (t *pgxLedgerTx) Commit(ctx context.Context) error {
	return t.base.CommitTx(ctx, t.tx)
}

func (t *pgxLedgerTx) Rollback(ctx context.Context) error {
	return t.base.RollbackTx(ctx, t.tx)
}

func findTransaction(ctx context.Context, q querier, query querybuilder.Query, id int64) (*domain.Transaction, error) {
	m, err := scanTransaction(q.QueryRow(ctx, query.SQL, query.Args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %d", id))
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find transaction %d", id), err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func queryTransactions(ctx context.Context, q querier, query querybuilder.Query) ([]domain.Transaction, error) {
	rows, err := q.Query(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	var result []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating transaction rows", err)
	}
	return mapping.ToDomainTransactionSlice(result), nil
}

func queryPayments(ctx context.Context, q querier, query querybuilder.Query) ([]domain.Payment, error) {
	rows, err := q.Query(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer rows.Close()

	var result []models.Payment
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.ID, &m.Value, &m.Status, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating payment rows", err)
	}
	return mapping.ToDomainPaymentSlice(result), nil
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(&m.ID, &m.Name, &m.Date, &m.Value, &m.Status, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}
