// Package querybuilder renders the ledger's SQL for both supported stores.
package querybuilder

import (
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
)

// SQLiteTimeLayout is the fixed-width UTC text form of timestamps in SQLite, so
// that text order equals time order.
const SQLiteTimeLayout = "2006-01-02T15:04:05.000000000Z"

const (
	TransactionColumns = "id, name, txn_date, value, status, created_at, last_updated_at"
	PaymentColumns     = "id, value, status, created_at, last_updated_at"
)

// Dialect captures the SQL differences between stores.
type Dialect struct {
	Name string
	// Placeholder renders the n-th (1-based) bind parameter.
	Placeholder func(n int) string
	// TimeArg converts a timestamp to its stored representation.
	TimeArg func(t time.Time) any
	// ValueOrder is the ORDER BY expression for monetary columns.
	ValueOrder string
	// ForUpdate is the row-locking suffix of locking reads.
	ForUpdate string
	// NameFold lowercases the name column for case-insensitive matching.
	NameFold string
}

var Postgres = Dialect{
	Name:        "postgres",
	Placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	TimeArg:     func(t time.Time) any { return t.UTC() },
	ValueOrder:  "value",
	ForUpdate:   " FOR UPDATE",
	NameFold:    "LOWER(name)",
}

var SQLite = Dialect{
	Name:        "sqlite3",
	Placeholder: func(int) string { return "?" },
	TimeArg:     func(t time.Time) any { return FormatSQLiteTime(t) },
	ValueOrder:  "CAST(value AS REAL)",
	ForUpdate:   "",
	NameFold:    "unicode_lower(name)",
}

// FormatSQLiteTime renders t in SQLiteTimeLayout.
func FormatSQLiteTime(t time.Time) string {
	return t.UTC().Format(SQLiteTimeLayout)
}

// ParseSQLiteTime parses a timestamp stored by FormatSQLiteTime.
func ParseSQLiteTime(s string) (time.Time, error) {
	return time.Parse(SQLiteTimeLayout, s)
}

// Query is rendered SQL with its bind arguments.
type Query struct {
	SQL  string
	Args []any
}

type builder struct {
	d     Dialect
	where []string
	args  []any
}

func (b *builder) bind(v any) string {
	b.args = append(b.args, v)
	return b.d.Placeholder(len(b.args))
}

func (b *builder) whereClause() string {
	if len(b.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.where, " AND ")
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (d Dialect) orderColumn(f domain.SortField) string {
	switch f {
	case domain.SortByName:
		return "name"
	case domain.SortByValue:
		return d.ValueOrder
	case domain.SortByStatus:
		return "status"
	default:
		return "txn_date"
	}
}

func (d Dialect) transactionOrderBy(sort []domain.SortOrder) string {
	if len(sort) == 0 {
		sort = domain.DefaultTransactionSort
	}
	terms := make([]string, 0, len(sort)+1)
	for _, o := range sort {
		dir := "ASC"
		if o.Direction == domain.Desc {
			dir = "DESC"
		}
		terms = append(terms, d.orderColumn(o.Field)+" "+dir)
	}
	terms = append(terms, "id ASC")
	return " ORDER BY " + strings.Join(terms, ", ")
}

// TransactionList renders the page query and the matching count query for a
// filtered transaction listing.
func TransactionList(d Dialect, f domain.TransactionFilter, p domain.PageRequest) (list Query, count Query) {
	b := &builder{d: d}
	if f.HasName() {
		pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(*f.Name))) + "%"
		b.where = append(b.where, d.NameFold+" LIKE "+b.bind(pattern)+` ESCAPE '\'`)
	}
	if f.HasDateRange() {
		b.where = append(b.where, "txn_date >= "+b.bind(d.TimeArg(*f.From)))
		b.where = append(b.where, "txn_date <= "+b.bind(d.TimeArg(*f.To)))
	}
	if f.Status != nil {
		b.where = append(b.where, "status = "+b.bind(string(*f.Status)))
	}

	where := b.whereClause()
	count = Query{SQL: "SELECT COUNT(*) FROM transactions" + where, Args: append([]any(nil), b.args...)}

	sql := "SELECT " + TransactionColumns + " FROM transactions" + where + d.transactionOrderBy(p.Sort)
	sql += " LIMIT " + b.bind(p.Size) + " OFFSET " + b.bind(p.Offset())
	list = Query{SQL: sql, Args: b.args}
	return list, count
}

// PaymentList renders the page query and count query for a payment listing,
// oldest first.
func PaymentList(d Dialect, status *domain.PaymentStatus, p domain.PageRequest) (list Query, count Query) {
	b := &builder{d: d}
	if status != nil {
		b.where = append(b.where, "status = "+b.bind(string(*status)))
	}

	where := b.whereClause()
	count = Query{SQL: "SELECT COUNT(*) FROM payments" + where, Args: append([]any(nil), b.args...)}

	sql := "SELECT " + PaymentColumns + " FROM payments" + where + " ORDER BY id ASC"
	sql += " LIMIT " + b.bind(p.Size) + " OFFSET " + b.bind(p.Offset())
	list = Query{SQL: sql, Args: b.args}
	return list, count
}

// PendingPaymentsForUpdate selects every PENDING payment, oldest created first.
func PendingPaymentsForUpdate(d Dialect) Query {
	b := &builder{d: d}
	sql := "SELECT " + PaymentColumns + " FROM payments WHERE status = " + b.bind(string(domain.PaymentPending)) +
		" ORDER BY id ASC" + d.ForUpdate
	return Query{SQL: sql, Args: b.args}
}

// PendingTransactionsForUpdate selects every PENDING transaction by ascending date.
func PendingTransactionsForUpdate(d Dialect) Query {
	b := &builder{d: d}
	sql := "SELECT " + TransactionColumns + " FROM transactions WHERE status = " + b.bind(string(domain.TransactionPending)) +
		" ORDER BY txn_date ASC, id ASC" + d.ForUpdate
	return Query{SQL: sql, Args: b.args}
}

// TransactionByID selects one transaction, optionally locking it.
func TransactionByID(d Dialect, id int64, forUpdate bool) Query {
	b := &builder{d: d}
	sql := "SELECT " + TransactionColumns + " FROM transactions WHERE id = " + b.bind(id)
	if forUpdate {
		sql += d.ForUpdate
	}
	return Query{SQL: sql, Args: b.args}
}

// InsertTransaction inserts a transaction. Postgres returns the new id.
func InsertTransaction(d Dialect, name string, date time.Time, value, status any, createdAt, updatedAt time.Time) Query {
	b := &builder{d: d}
	sql := "INSERT INTO transactions (name, txn_date, value, status, created_at, last_updated_at) VALUES (" +
		strings.Join([]string{
			b.bind(name), b.bind(d.TimeArg(date)), b.bind(value), b.bind(status),
			b.bind(d.TimeArg(createdAt)), b.bind(d.TimeArg(updatedAt)),
		}, ", ") + ")"
	if d.Name == Postgres.Name {
		sql += " RETURNING id"
	}
	return Query{SQL: sql, Args: b.args}
}

// UpdateTransaction overwrites every mutable column of a transaction.
func UpdateTransaction(d Dialect, id int64, name string, date time.Time, value, status any, updatedAt time.Time) Query {
	b := &builder{d: d}
	sql := "UPDATE transactions SET name = " + b.bind(name) +
		", txn_date = " + b.bind(d.TimeArg(date)) +
		", value = " + b.bind(value) +
		", status = " + b.bind(status) +
		", last_updated_at = " + b.bind(d.TimeArg(updatedAt)) +
		" WHERE id = " + b.bind(id)
	return Query{SQL: sql, Args: b.args}
}

// DeleteTransaction removes a transaction by id.
func DeleteTransaction(d Dialect, id int64) Query {
	b := &builder{d: d}
	return Query{SQL: "DELETE FROM transactions WHERE id = " + b.bind(id), Args: b.args}
}

// InsertPayment inserts a payment. Postgres returns the new id.
func InsertPayment(d Dialect, value, status any, createdAt, updatedAt time.Time) Query {
	b := &builder{d: d}
	sql := "INSERT INTO payments (value, status, created_at, last_updated_at) VALUES (" +
		strings.Join([]string{b.bind(value), b.bind(status), b.bind(d.TimeArg(createdAt)), b.bind(d.TimeArg(updatedAt))}, ", ") + ")"
	if d.Name == Postgres.Name {
		sql += " RETURNING id"
	}
	return Query{SQL: sql, Args: b.args}
}

// UpdatePayment overwrites the value and status of a payment.
func UpdatePayment(d Dialect, id int64, value, status any, updatedAt time.Time) Query {
	b := &builder{d: d}
	sql := "UPDATE payments SET value = " + b.bind(value) +
		", status = " + b.bind(status) +
		", last_updated_at = " + b.bind(d.TimeArg(updatedAt)) +
		" WHERE id = " + b.bind(id)
	return Query{SQL: sql, Args: b.args}
}
