package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_reconciler/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories. lockKey identifies
// the advisory lock that serializes allocation runs.
func NewRepositoryProvider(dbPool *pgxpool.Pool, lockKey int64) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerStore: newPgxLedgerRepository(dbPool, lockKey),
	}
}
