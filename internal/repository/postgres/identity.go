package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"candidate-service/pkg/database"

	"github.com/lib/pq"
)

var ErrUnknownTable = errors.New("unknown table")

// IdentityGenerator hands out the next surrogate id for a table as
// MAX(id)+1. It takes no lock, so two concurrent creates on the same table
// can be given the same id; the primary key rejects the loser.
type IdentityGenerator struct {
	db database.DB
}

func NewIdentityGenerator(db database.DB) *IdentityGenerator {
	return &IdentityGenerator{db: db}
}

// GenerateIdentity returns 1 for an empty table.
func (g *IdentityGenerator) GenerateIdentity(ctx context.Context, table string) (int64, error) {
	if _, ok := knownTables[table]; !ok {
		return 0, fmt.Errorf("generate identity for %q: %w", table, ErrUnknownTable)
	}

	query := fmt.Sprintf(`SELECT COALESCE(MAX(id), 0) + 1 FROM %s`, pq.QuoteIdentifier(table))

	var id int64
	if err := g.db.QueryRow(ctx, query).Scan(&id); err != nil {
		return 0, fmt.Errorf("generate identity for %s: %w", table, err)
	}
	return id, nil
}

// utcNow is the default repository clock. Microsecond precision matches what
// both PostgreSQL and SQLite persist, so a written timestamp reads back equal.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
