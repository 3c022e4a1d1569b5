// Package duckdbtesting opens history databases for tests.
package duckdbtesting

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"jeeval/internal/duckdb"
	"jeeval/internal/testutil"
)

const pingTimeout = 2 * time.Second

// OpenHistory opens a history database through duckdb.Open, so the schema is
// already applied. An empty path opens an in-memory database. The connection
// is closed when the test ends.
func OpenHistory(t testing.TB, path string) *sql.DB {
	t.Helper()
	db, err := duckdb.Open(path)
	if err != nil {
		t.Fatalf("open history %q: %v", path, err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := db.PingContext(testutil.Context(t, pingTimeout)); err != nil {
		t.Fatalf("history %q not responding: %v", path, err)
	}
	return db
}

// CountRows returns the number of rows in table matching where. An empty
// where counts every row.
func CountRows(t testing.TB, db *sql.DB, table, where string, args ...any) int {
	t.Helper()
	query := fmt.Sprintf("SELECT count(*) FROM %s", table)
	if where != "" {
		query += " WHERE " + where
	}
	var count int
	if err := db.QueryRowContext(testutil.Context(t, pingTimeout), query, args...).Scan(&count); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return count
}
