// Package postgres implements the repository contracts on PostgreSQL
// through database/sql over the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
)

// DB is the database handle the repositories run on. Both *sql.DB and
// the circuit-breaker wrapper satisfy it, so callers choose whether
// queries go through breaker protection.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}
