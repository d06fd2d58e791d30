package sqlite_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/ledger_reconciler/internal/apperrors"
	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_reconciler/internal/core/ports/services"
	"github.com/SscSPs/ledger_reconciler/internal/core/services"
	"github.com/SscSPs/ledger_reconciler/internal/dto"
	"github.com/SscSPs/ledger_reconciler/internal/repositories/database/sqlite"
	"github.com/SscSPs/ledger_reconciler/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) portssvc.LedgerSvcFacade {
	t.Helper()
	return newLedgerAt(t, database.MemoryPath)
}

func newLedgerAt(t *testing.T, path string) portssvc.LedgerSvcFacade {
	t.Helper()

	db, err := database.NewSQLiteDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.MigrateSQLite(db, slog.New(slog.NewTextHandler(io.Discard, nil))))

	container := services.NewServiceContainer(sqlite.NewRepositoryProvider(db))
	return container.Ledger
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func create(t *testing.T, ledger portssvc.LedgerSvcFacade, name string, date time.Time, value string) *domain.Transaction {
	t.Helper()
	txn, err := ledger.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Name:  name,
		Date:  date,
		Value: amount(value),
	})
	require.NoError(t, err)
	return txn
}

func TestPaymentSettlesOldestTransactionsFirst(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()
	day := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t100 := create(t, ledger, "third", day.AddDate(0, 0, 2), "100")
	t50 := create(t, ledger, "first", day, "50")
	t75 := create(t, ledger, "second", day.AddDate(0, 0, 1), "75")

	result, err := ledger.MakePayment(ctx, decimal.NewFromInt(130))
	require.NoError(t, err)
	assert.Equal(t, []int64{t50.ID, t75.ID}, result.SettledTransactionIDs)
	require.NotNil(t, result.CreatedPayment)
	assert.True(t, decimal.NewFromInt(5).Equal(result.CreatedPayment.Value))
	assert.Equal(t, domain.PaymentPending, result.CreatedPayment.Status)

	for id, want := range map[int64]domain.TransactionStatus{
		t50.ID:  domain.TransactionPaid,
		t75.ID:  domain.TransactionPaid,
		t100.ID: domain.TransactionPending,
	} {
		got, err := ledger.GetTransactionByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status, "transaction %d", id)
	}

	got, err := ledger.GetTransactionByID(ctx, t100.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Value))
}

func TestNewTransactionDrawsOnPendingPayments(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	_, err := ledger.MakePayment(ctx, decimal.NewFromInt(20))
	require.NoError(t, err)

	small := create(t, ledger, "coffee", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "3")
	assert.Equal(t, domain.TransactionPaid, small.Status)
	assert.True(t, small.Value.IsZero())

	large := create(t, ledger, "groceries", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "30")
	assert.Equal(t, domain.TransactionPending, large.Status)
	assert.True(t, decimal.NewFromInt(13).Equal(large.Value))

	pending := domain.PaymentPending
	page, err := ledger.ListPayments(ctx, &pending, domain.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Zero(t, page.TotalElements)
	assert.Empty(t, page.Content)
}

func TestTransactionDatesAreStoredInUTC(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()
	local := time.Date(2024, 6, 30, 22, 0, 0, 0, time.FixedZone("UTC-4", -4*3600))

	created := create(t, ledger, "late", local, "10")

	got, err := ledger.GetTransactionByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 1, 2, 0, 0, 0, time.UTC), got.Date)
}

func TestListTransactionsByName(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()
	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	create(t, ledger, "Alice", day, "10")
	create(t, ledger, "Bob", day, "20")

	name := "ali"
	page, err := ledger.ListTransactions(ctx, domain.TransactionFilter{Name: &name}, domain.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Alice", page.Content[0].Name)
	assert.EqualValues(t, 1, page.TotalElements)
	assert.Equal(t, domain.DefaultPageSize, page.Size)

	create(t, ledger, "Émile Zola", day, "30")
	create(t, ledger, "ÖZGÜR", day, "40")
	for query, want := range map[string]string{
		"émile": "Émile Zola",
		"ÉMILE": "Émile Zola",
		"özgür": "ÖZGÜR",
	} {
		q := query
		page, err := ledger.ListTransactions(ctx, domain.TransactionFilter{Name: &q}, domain.PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Content, 1, query)
		assert.Equal(t, want, page.Content[0].Name, query)
	}
}

func TestPaidTransactionIsImmutable(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	txn := create(t, ledger, "rent", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "10")
	_, err := ledger.MakePayment(ctx, decimal.NewFromInt(10))
	require.NoError(t, err)

	_, err = ledger.UpdateTransaction(ctx, txn.ID, dto.UpdateTransactionRequest{
		Name: "rent", Date: txn.Date, Value: amount("10"), Status: "PENDING",
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.ErrorIs(t, ledger.DeleteTransaction(ctx, txn.ID), apperrors.ErrConflict)
}

func TestConcurrentPaymentsConserveFunds(t *testing.T) {
	ledger := newLedgerAt(t, filepath.Join(t.TempDir(), "ledger.db"))
	ctx := context.Background()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	const bills, payments = 20, 20
	for i := 0; i < bills; i++ {
		create(t, ledger, "bill", day.AddDate(0, 0, i), "10")
	}

	var wg sync.WaitGroup
	errs := make(chan error, payments)
	for i := 0; i < payments; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.MakePayment(ctx, decimal.NewFromInt(13))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	all := domain.PageRequest{Size: domain.MaxPageSize}
	txns, err := ledger.ListTransactions(ctx, domain.TransactionFilter{}, all)
	require.NoError(t, err)
	unpaid := decimal.Zero
	for _, txn := range txns.Content {
		unpaid = unpaid.Add(txn.Value)
	}

	pays, err := ledger.ListPayments(ctx, nil, all)
	require.NoError(t, err)
	surplus := decimal.Zero
	for _, p := range pays.Content {
		surplus = surplus.Add(p.Value)
	}

	// Each run settles exactly one bill and keeps 3 as a new payment.
	assert.True(t, unpaid.IsZero(), "unpaid %s", unpaid)
	assert.True(t, decimal.NewFromInt(60).Equal(surplus), "surplus %s", surplus)
	assert.EqualValues(t, payments, pays.TotalElements)
	paid := decimal.NewFromInt(bills * 10).Sub(unpaid)
	assert.True(t, paid.Add(surplus).Equal(decimal.NewFromInt(payments*13)))
}
