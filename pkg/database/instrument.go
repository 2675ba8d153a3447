package database

import (
	"context"
	"errors"
	"time"
)

// QueryObserver receives the latency and outcome of every statement.
type QueryObserver interface {
	ObserveQuery(op string, d time.Duration, err error)
}

type instrumentedDB struct {
	DB
	obs QueryObserver
}

// Instrument decorates db so each Exec/Query/QueryRow is reported to obs.
// A nil observer returns db unchanged.
func Instrument(db DB, obs QueryObserver) DB {
	if obs == nil {
		return db
	}
	return &instrumentedDB{DB: db, obs: obs}
}

func (d *instrumentedDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	start := time.Now()
	n, err := d.DB.Exec(ctx, query, args...)
	d.obs.ObserveQuery("exec", time.Since(start), err)
	return n, err
}

func (d *instrumentedDB) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	start := time.Now()
	rows, err := d.DB.Query(ctx, query, args...)
	d.obs.ObserveQuery("query", time.Since(start), err)
	return rows, err
}

func (d *instrumentedDB) QueryRow(ctx context.Context, query string, args ...any) Row {
	return &observedRow{row: d.DB.QueryRow(ctx, query, args...), obs: d.obs, start: time.Now()}
}

type observedRow struct {
	row   Row
	obs   QueryObserver
	start time.Time
}

func (r *observedRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	// an empty result is an answer, not a failure
	reported := err
	if errors.Is(err, ErrNoRows) {
		reported = nil
	}
	r.obs.ObserveQuery("query_row", time.Since(r.start), reported)
	return err
}
