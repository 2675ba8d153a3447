package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"candidate-service/internal/domain"
	"candidate-service/pkg/database"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 123456000, time.UTC)

func fixedClock() time.Time { return fixedNow }

// newTestDB opens a private in-memory SQLite database loaded with the shared
// schema. One connection only: every new :memory: connection is a new database.
func newTestDB(t *testing.T) database.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	schema, err := os.ReadFile("testdata/schema.sql")
	require.NoError(t, err)
	_, err = sqlDB.Exec(string(schema))
	require.NoError(t, err)

	return database.NewSQLDB(sqlDB, database.Options{QueryTimeout: 5 * time.Second})
}

func seedSkill(t *testing.T, db database.DB, id int64, name string) {
	t.Helper()
	_, err := db.Exec(context.Background(), `INSERT INTO skill (id, name) VALUES ($1, $2)`, id, name)
	require.NoError(t, err)
}

func seedCandidate(t *testing.T, db database.DB, first, surname string) int64 {
	t.Helper()
	repo := newCandidateRepository(db, fixedClock)
	c, err := repo.CreateCandidate(context.Background(), &domain.Candidate{
		FirstName:   &first,
		Surname:     &surname,
		DateOfBirth: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		PhoneMobile: strPtr("555-0100"),
	})
	require.NoError(t, err)
	require.NotNil(t, c)
	return c.ID
}

func strPtr(s string) *string { return &s }
