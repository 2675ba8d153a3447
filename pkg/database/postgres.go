package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig carries the pool sizing knobs exposed through configuration.
type PoolConfig struct {
	MaxConns int32
	MinConns int32
}

func NewPostgresConnection(ctx context.Context, connString string, pc PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	// Keep working behind transaction-mode poolers (PgBouncer), which reject
	// named prepared statements.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	config.MaxConns = 25
	config.MinConns = 5
	if pc.MaxConns > 0 {
		config.MaxConns = pc.MaxConns
	}
	if pc.MinConns > 0 && pc.MinConns <= config.MaxConns {
		config.MinConns = pc.MinConns
	}
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

type pgxDB struct {
	pool *pgxpool.Pool
	opts Options
}

// NewPgxDB adapts a pgx pool to DB.
func NewPgxDB(pool *pgxpool.Pool, opts Options) DB {
	return &pgxDB{pool: pool, opts: opts}
}

func (d *pgxDB) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

func (d *pgxDB) Close() error {
	d.pool.Close()
	return nil
}

func (d *pgxDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	ctx, cancel := d.opts.withTimeout(ctx)
	defer cancel()
	tag, err := d.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (d *pgxDB) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	ctx, cancel := d.opts.withTimeout(ctx)
	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		cancel()
		return nil, err
	}
	return cancelRows{Rows: pgxRows{rows: rows}, cancel: cancel}, nil
}

func (d *pgxDB) QueryRow(ctx context.Context, query string, args ...any) Row {
	ctx, cancel := d.opts.withTimeout(ctx)
	return cancelRow{row: d.pool.QueryRow(ctx, query, args...), cancel: cancel, mapErr: mapPgxErr}
}

type pgxRows struct {
	rows pgx.Rows
}

func (r pgxRows) Close()                 { r.rows.Close() }
func (r pgxRows) Next() bool             { return r.rows.Next() }
func (r pgxRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r pgxRows) Err() error             { return r.rows.Err() }

func mapPgxErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoRows
	}
	return err
}
