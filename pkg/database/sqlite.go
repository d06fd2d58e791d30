package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"
)

// MemoryPath opens a private in-memory SQLite database.
const MemoryPath = ":memory:"

// SQLiteDriverName is the go-sqlite3 driver with the ledger's SQL functions
// registered on every connection.
const SQLiteDriverName = "sqlite3_ledger"

var registerDriverOnce sync.Once

// registerSQLiteDriver adds unicode_lower, a Unicode-aware LOWER. The built-in
// LOWER only folds ASCII letters.
func registerSQLiteDriver() {
	registerDriverOnce.Do(func() {
		sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("unicode_lower", strings.ToLower, true)
			},
		})
	})
}

// NewSQLiteDB opens the SQLite database at path. Write transactions start with
// BEGIN IMMEDIATE and the handle is limited to one connection, which makes the
// store a single writer.
func NewSQLiteDB(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}

	params := "_txlock=immediate&_foreign_keys=on&_busy_timeout=5000"
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
		params += "&_journal_mode=WAL"
	}

	registerSQLiteDriver()
	db, err := sql.Open(SQLiteDriverName, "file:"+path+"?"+params)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	return db, nil
}
