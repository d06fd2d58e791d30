package repositories

import (
	"context"
)

// TransactionManager opens store transactions.
type TransactionManager interface {
	// Begin starts a new store transaction. Callers must defer Rollback.
	Begin(ctx context.Context) (LedgerTx, error)
}

// TxFinisher ends a store transaction.
type TxFinisher interface {
	// Commit commits the transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction. It is a no-op after Commit.
	Rollback(ctx context.Context) error
}
