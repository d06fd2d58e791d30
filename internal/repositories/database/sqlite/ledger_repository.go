// Package sqlite is the embedded single-file store of the ledger.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_reconciler/internal/apperrors"
	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_reconciler/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_reconciler/internal/models"
	"github.com/SscSPs/ledger_reconciler/internal/repositories/database/querybuilder"
	"github.com/SscSPs/ledger_reconciler/internal/utils/mapping"
)

var dialect = querybuilder.SQLite

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// LedgerRepository stores transactions and payments in SQLite.
type LedgerRepository struct {
	db *sql.DB
}

// NewRepositoryProvider wires the SQLite ledger store. db should come from
// database.NewSQLiteDB so that write transactions begin IMMEDIATE.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerStore: NewLedgerRepository(db),
	}
}

// NewLedgerRepository creates a SQLite ledger store over db.
func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

var _ portsrepo.LedgerStore = (*LedgerRepository)(nil)

func (r *LedgerRepository) Begin(ctx context.Context) (portsrepo.LedgerTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return &ledgerTx{tx: tx}, nil
}

func (r *LedgerRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	return findTransaction(ctx, r.db, querybuilder.TransactionByID(dialect, id, false), id)
}

func (r *LedgerRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, int64, error) {
	list, count := querybuilder.TransactionList(dialect, filter, page)

	var total int64
	if err := r.db.QueryRowContext(ctx, count.SQL, count.Args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}
	txns, err := queryTransactions(ctx, r.db, list)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

func (r *LedgerRepository) ListPayments(ctx context.Context, status *domain.PaymentStatus, page domain.PageRequest) ([]domain.Payment, int64, error) {
	list, count := querybuilder.PaymentList(dialect, status, page)

	var total int64
	if err := r.db.QueryRowContext(ctx, count.SQL, count.Args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count payments", err)
	}
	payments, err := queryPayments(ctx, r.db, list)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

type ledgerTx struct {
	tx *sql.Tx
}

var _ portsrepo.LedgerTx = (*ledgerTx)(nil)

// LockLedger is a no-op: the transaction already began IMMEDIATE and holds
// the database write lock.
func (t *ledgerTx) LockLedger(context.Context) error {
	return nil
}

func (t *ledgerTx) FindPendingPaymentsForUpdate(ctx context.Context) ([]domain.Payment, error) {
	return queryPayments(ctx, t.tx, querybuilder.PendingPaymentsForUpdate(dialect))
}

func (t *ledgerTx) FindPendingTransactionsForUpdate(ctx context.Context) ([]domain.Transaction, error) {
	return queryTransactions(ctx, t.tx, querybuilder.PendingTransactionsForUpdate(dialect))
}

func (t *ledgerTx) FindTransactionByIDForUpdate(ctx context.Context, id int64) (*domain.Transaction, error) {
	return findTransaction(ctx, t.tx, querybuilder.TransactionByID(dialect, id, true), id)
}

func (t *ledgerTx) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	q := querybuilder.InsertTransaction(dialect, m.Name, m.Date, m.Value, m.Status, m.CreatedAt, m.LastUpdatedAt)
	res, err := t.tx.ExecContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert transaction", err)
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read transaction id", err)
	}
	saved := mapping.ToDomainTransaction(m)
	return &saved, nil
}

func (t *ledgerTx) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	q := querybuilder.UpdateTransaction(dialect, m.ID, m.Name, m.Date, m.Value, m.Status, m.LastUpdatedAt)
	return execOne(ctx, t.tx, q, fmt.Sprintf("transaction %d", m.ID))
}

func (t *ledgerTx) DeleteTransaction(ctx context.Context, id int64) error {
	return execOne(ctx, t.tx, querybuilder.DeleteTransaction(dialect, id), fmt.Sprintf("transaction %d", id))
}

func (t *ledgerTx) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	m := mapping.ToModelPayment(payment)
	q := querybuilder.InsertPayment(dialect, m.Value, m.Status, m.CreatedAt, m.LastUpdatedAt)
	res, err := t.tx.ExecContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payment", err)
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read payment id", err)
	}
	saved := mapping.ToDomainPayment(m)
	return &saved, nil
}

func (t *ledgerTx) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	q := querybuilder.UpdatePayment(dialect, m.ID, m.Value, m.Status, m.LastUpdatedAt)
	return execOne(ctx, t.tx, q, fmt.Sprintf("payment %d", m.ID))
}

func (t *ledgerTx) Commit(context.Context) error {
	if err := t.tx.Commit(); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

func (t *ledgerTx) Rollback(context.Context) error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// execOne runs a statement that must touch exactly one row.
func execOne(ctx context.Context, q querier, query querybuilder.Query, what string) error {
	res, err := q.ExecContext(ctx, query.SQL, query.Args...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to write "+what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewAppError(500, "failed to read affected rows for "+what, err)
	}
	if n == 0 {
		return apperrors.NewNotFoundError(what)
	}
	return nil
}

func findTransaction(ctx context.Context, q querier, query querybuilder.Query, id int64) (*domain.Transaction, error) {
	m, err := scanTransaction(q.QueryRowContext(ctx, query.SQL, query.Args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %d", id))
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find transaction %d", id), err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func queryTransactions(ctx context.Context, q querier, query querybuilder.Query) ([]domain.Transaction, error) {
	rows, err := q.QueryContext(ctx, query.SQL, query.Args...)
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
	rows, err := q.QueryContext(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer rows.Close()

	var result []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating payment rows", err)
	}
	return mapping.ToDomainPaymentSlice(result), nil
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var (
		m                           models.Transaction
		date, createdAt, updatedAt string
	)
	if err := row.Scan(&m.ID, &m.Name, &date, &m.Value, &m.Status, &createdAt, &updatedAt); err != nil {
		return m, err
	}
	var err error
	if m.Date, err = querybuilder.ParseSQLiteTime(date); err != nil {
		return m, err
	}
	m.AuditFields, err = parseAudit(createdAt, updatedAt)
	return m, err
}

func scanPayment(row rowScanner) (models.Payment, error) {
	var (
		m                    models.Payment
		createdAt, updatedAt string
	)
	if err := row.Scan(&m.ID, &m.Value, &m.Status, &createdAt, &updatedAt); err != nil {
		return m, err
	}
	var err error
	m.AuditFields, err = parseAudit(createdAt, updatedAt)
	return m, err
}

func parseAudit(createdAt, updatedAt string) (models.AuditFields, error) {
	var (
		a   models.AuditFields
		err error
	)
	if a.CreatedAt, err = querybuilder.ParseSQLiteTime(createdAt); err != nil {
		return a, err
	}
	a.LastUpdatedAt, err = querybuilder.ParseSQLiteTime(updatedAt)
	return a, err
}
