package database

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLite(t *testing.T, opts Options) DB {
	t.Helper()
	raw, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = raw.Close() })

	db := NewSQLDB(raw, opts)
	_, err = db.Exec(context.Background(), `CREATE TABLE item (id INTEGER PRIMARY KEY, name VARCHAR(50) NOT NULL)`)
	require.NoError(t, err)
	return db
}

type observation struct {
	op  string
	err error
}

type recordingObserver struct {
	mu  sync.Mutex
	obs []observation
}

func (r *recordingObserver) ObserveQuery(op string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.obs = append(r.obs, observation{op: op, err: err})
}

func TestSQLDB(t *testing.T) {
	ctx := context.Background()
	db := newSQLite(t, Options{QueryTimeout: time.Second})

	require.NoError(t, db.Ping(ctx))

	n, err := db.Exec(ctx, `INSERT INTO item (id, name) VALUES ($1, $2), ($3, $4)`, 1, "a", 2, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = db.Exec(ctx, `UPDATE item SET name = $1 WHERE id = $2`, "z", 99)
	require.NoError(t, err)
	assert.Zero(t, n)

	rows, err := db.Query(ctx, `SELECT id, name FROM item ORDER BY id`)
	require.NoError(t, err)
	var names []string
	for rows.Next() {
		var id int64
		var name string
		require.NoError(t, rows.Scan(&id, &name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	rows.Close()
	assert.Equal(t, []string{"a", "b"}, names)

	t.Run("missing row maps to ErrNoRows", func(t *testing.T) {
		var name string
		err := db.QueryRow(ctx, `SELECT name FROM item WHERE id = $1`, 42).Scan(&name)
		assert.ErrorIs(t, err, ErrNoRows)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		_, err := db.Exec(ctx, `INSERT INTO missing_table VALUES (1)`)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrNoRows))
	})
}

func TestOptionsWithTimeout(t *testing.T) {
	t.Run("zero timeout leaves context alone", func(t *testing.T) {
		ctx, cancel := Options{}.withTimeout(context.Background())
		defer cancel()
		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})

	t.Run("caller deadline wins", func(t *testing.T) {
		parent, pcancel := context.WithTimeout(context.Background(), time.Hour)
		defer pcancel()
		want, _ := parent.Deadline()

		ctx, cancel := Options{QueryTimeout: time.Millisecond}.withTimeout(parent)
		defer cancel()
		got, _ := ctx.Deadline()
		assert.Equal(t, want, got)
	})

	t.Run("timeout applied otherwise", func(t *testing.T) {
		ctx, cancel := Options{QueryTimeout: time.Minute}.withTimeout(context.Background())
		defer cancel()
		_, ok := ctx.Deadline()
		assert.True(t, ok)
	})
}

func TestInstrument(t *testing.T) {
	ctx := context.Background()

	t.Run("nil observer returns the db unchanged", func(t *testing.T) {
		db := newSQLite(t, Options{})
		assert.Same(t, db, Instrument(db, nil))
	})

	t.Run("reports each statement", func(t *testing.T) {
		rec := &recordingObserver{}
		db := Instrument(newSQLite(t, Options{}), rec)

		_, err := db.Exec(ctx, `INSERT INTO item (id, name) VALUES ($1, $2)`, 1, "a")
		require.NoError(t, err)

		rows, err := db.Query(ctx, `SELECT id FROM item`)
		require.NoError(t, err)
		rows.Close()

		var name string
		require.NoError(t, db.QueryRow(ctx, `SELECT name FROM item WHERE id = $1`, 1).Scan(&name))
		assert.ErrorIs(t, db.QueryRow(ctx, `SELECT name FROM item WHERE id = $1`, 2).Scan(&name), ErrNoRows)

		_, err = db.Exec(ctx, `DELETE FROM nowhere`)
		require.Error(t, err)

		require.Len(t, rec.obs, 5)
		assert.Equal(t, "exec", rec.obs[0].op)
		assert.Equal(t, "query", rec.obs[1].op)
		assert.Equal(t, "query_row", rec.obs[2].op)
		assert.NoError(t, rec.obs[3].err, "an empty result is not an error")
		assert.Equal(t, "exec", rec.obs[4].op)
		assert.Error(t, rec.obs[4].err)
	})
}
