package repositories

import (
	"context"

	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
)

// LedgerReader defines read operations that run outside a store transaction.
type LedgerReader interface {
	// FindTransactionByID retrieves a transaction. Returns apperrors.ErrNotFound when absent.
	FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)

	// ListTransactions returns one page of transactions matching filter, and the total match count.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) ([]domain.Transaction, int64, error)

	// ListPayments returns one page of payments, oldest first, optionally restricted to a status.
	ListPayments(ctx context.Context, status *domain.PaymentStatus, page domain.PageRequest) ([]domain.Payment, int64, error)
}

// LedgerTxReader defines locking reads. Rows returned stay locked until the
// transaction ends.
type LedgerTxReader interface {
	// LockLedger serializes allocation runs against each other.
	LockLedger(ctx context.Context) error

	// FindPendingPaymentsForUpdate returns every PENDING payment ordered by ascending id.
	FindPendingPaymentsForUpdate(ctx context.Context) ([]domain.Payment, error)

	// FindPendingTransactionsForUpdate returns every PENDING transaction ordered by date, then id.
	FindPendingTransactionsForUpdate(ctx context.Context) ([]domain.Transaction, error)

	// FindTransactionByIDForUpdate retrieves and locks one transaction.
	FindTransactionByIDForUpdate(ctx context.Context, id int64) (*domain.Transaction, error)
}

// LedgerTxWriter defines write operations inside a store transaction.
type LedgerTxWriter interface {
	// SaveTransaction inserts a transaction and returns it with its assigned id.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// UpdateTransaction overwrites a transaction by id.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction by id.
	DeleteTransaction(ctx context.Context, id int64) error

	// SavePayment inserts a payment and returns it with its assigned id.
	SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)

	// UpdatePayment overwrites a payment's value and status by id.
	UpdatePayment(ctx context.Context, payment domain.Payment) error
}

// LedgerTx is one open store transaction over the ledger.
type LedgerTx interface {
	LedgerTxReader
	LedgerTxWriter
	TxFinisher
}

// LedgerStore combines plain reads with transaction management.
//
//go:generate mockgen -destination=mocks/mock_ledger_repositories.go -package=mock_repositories github.com/SscSPs/ledger_reconciler/internal/core/ports/repositories LedgerStore,LedgerTx
type LedgerStore interface {
	LedgerReader
	TransactionManager
}
