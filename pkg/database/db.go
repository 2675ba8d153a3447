package database

import (
	"context"
	"errors"
	"time"
)

// ErrNoRows is returned by Row.Scan when a single-row query matched nothing,
// regardless of which driver produced the result.
var ErrNoRows = errors.New("database: no rows in result set")

// DB is the narrow store capability the repositories depend on. It is
// implemented over pgxpool (production) and database/sql (lib/pq, sqlite).
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}

// Options tunes the adapters. QueryTimeout is applied only when the caller's
// context carries no deadline of its own.
type Options struct {
	QueryTimeout time.Duration
}

func (o Options) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.QueryTimeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, o.QueryTimeout)
}

// cancelRows releases the statement context once the caller closes the rows.
type cancelRows struct {
	Rows
	cancel context.CancelFunc
}

func (r cancelRows) Close() {
	r.Rows.Close()
	r.cancel()
}

type cancelRow struct {
	row    Row
	cancel context.CancelFunc
	mapErr func(error) error
}

func (r cancelRow) Scan(dest ...any) error {
	defer r.cancel()
	return r.mapErr(r.row.Scan(dest...))
}
