package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // registers the "postgres" driver
)

type sqlDB struct {
	db   *sql.DB
	opts Options
}

// OpenSQL opens a database/sql handle for driver ("postgres" for lib/pq) and
// verifies connectivity.
func OpenSQL(ctx context.Context, driver, dsn string, pc PoolConfig, opts Options) (DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	if pc.MaxConns > 0 {
		db.SetMaxOpenConns(int(pc.MaxConns))
	}
	if pc.MinConns > 0 {
		db.SetMaxIdleConns(int(pc.MinConns))
	}
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return NewSQLDB(db, opts), nil
}

// NewSQLDB adapts an already opened *sql.DB.
func NewSQLDB(db *sql.DB, opts Options) DB {
	return &sqlDB{db: db, opts: opts}
}

func (d *sqlDB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *sqlDB) Close() error {
	return d.db.Close()
}

func (d *sqlDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	ctx, cancel := d.opts.withTimeout(ctx)
	defer cancel()
	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (d *sqlDB) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	ctx, cancel := d.opts.withTimeout(ctx)
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		cancel()
		return nil, err
	}
	return cancelRows{Rows: sqlRows{rows: rows}, cancel: cancel}, nil
}

func (d *sqlDB) QueryRow(ctx context.Context, query string, args ...any) Row {
	ctx, cancel := d.opts.withTimeout(ctx)
	return cancelRow{row: d.db.QueryRowContext(ctx, query, args...), cancel: cancel, mapErr: mapSQLErr}
}

type sqlRows struct {
	rows *sql.Rows
}

func (r sqlRows) Close()                 { _ = r.rows.Close() }
func (r sqlRows) Next() bool             { return r.rows.Next() }
func (r sqlRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r sqlRows) Err() error             { return r.rows.Err() }

func mapSQLErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoRows
	}
	return err
}
