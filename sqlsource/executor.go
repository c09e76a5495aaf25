package sqlsource

import (
	"context"
	"database/sql"
)

// Executor represents the database connection abstraction.
// It must remain compatible with sql.DB, sql.Tx and mocks.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
}

// Rows represents an iterator over query results.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
}

// Querier is the subset of database/sql the source needs. It is satisfied
// by *sql.DB, *sql.Tx and *sql.Conn, so the caller chooses the transaction
// scope; the source never opens one itself.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// FromDB wraps a database/sql handle as an Executor.
func FromDB(q Querier) Executor {
	return sqlExecutor{q: q}
}

type sqlExecutor struct {
	q Querier
}

func (e sqlExecutor) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	return e.q.QueryContext(ctx, query, args...)
}
