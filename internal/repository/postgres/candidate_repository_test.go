package postgres

import (
	"context"
	"testing"
	"time"

	"candidate-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCandidate(first, surname string) *domain.Candidate {
	return &domain.Candidate{
		FirstName:   &first,
		Surname:     &surname,
		DateOfBirth: time.Date(1988, 11, 23, 0, 0, 0, 0, time.UTC),
		Town:        strPtr("Leeds"),
		PhoneMobile: strPtr("07700 900123"),
	}
}

func TestCandidateRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newCandidateRepository(newTestDB(t), fixedClock)

	input := newCandidate("Ada", "Lovelace")
	input.CreatedDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	created, err := repo.CreateCandidate(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Ada", *created.FirstName)
	assert.True(t, input.DateOfBirth.Equal(created.DateOfBirth))
	assert.True(t, fixedNow.Equal(created.CreatedDate), "caller supplied created date must be overridden")
	assert.True(t, fixedNow.Equal(created.UpdatedDate))
	assert.Nil(t, created.Address)
	assert.Nil(t, created.PhoneHome)
	assert.Nil(t, created.PhoneWork)

	second, err := repo.CreateCandidate(ctx, newCandidate("Alan", "Turing"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	got, err := repo.GetCandidateByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCandidateRepository_GetCandidateByIDMissing(t *testing.T) {
	repo := newCandidateRepository(newTestDB(t), fixedClock)

	got, err := repo.GetCandidateByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCandidateRepository_GetAllCandidates(t *testing.T) {
	ctx := context.Background()
	repo := newCandidateRepository(newTestDB(t), fixedClock)

	all, err := repo.GetAllCandidates(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	for _, name := range []string{"Grace", "Edsger", "Barbara"} {
		_, err := repo.CreateCandidate(ctx, newCandidate(name, "Test"))
		require.NoError(t, err)
	}

	all, err = repo.GetAllCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, c := range all {
		assert.Equal(t, int64(i+1), c.ID)
	}
	assert.Equal(t, "Barbara", *all[2].FirstName)
}

func TestCandidateRepository_UpdateExistingCandidate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	created, err := newCandidateRepository(db, fixedClock).CreateCandidate(ctx, newCandidate("Ada", "Lovelace"))
	require.NoError(t, err)

	later := fixedNow.Add(time.Hour)
	repo := newCandidateRepository(db, func() time.Time { return later })

	t.Run("overwrites mutable fields", func(t *testing.T) {
		change := *created
		change.Surname = strPtr("King")
		change.Town = nil
		change.PhoneWork = strPtr("0113 496 0000")
		change.CreatedDate = later

		updated, err := repo.UpdateExistingCandidate(ctx, &change)
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, "King", *updated.Surname)
		assert.Nil(t, updated.Town)
		assert.Equal(t, "0113 496 0000", *updated.PhoneWork)
		assert.True(t, fixedNow.Equal(updated.CreatedDate), "created date is never rewritten")
		assert.True(t, later.Equal(updated.UpdatedDate))
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		ghost := newCandidate("No", "Body")
		ghost.ID = 99

		updated, err := repo.UpdateExistingCandidate(ctx, ghost)
		require.NoError(t, err)
		assert.Nil(t, updated)

		exists, err := repo.CandidateExists(ctx, 99)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCandidateRepository_CandidateExists(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	id := seedCandidate(t, db, "Ada", "Lovelace")
	repo := newCandidateRepository(db, fixedClock)

	exists, err := repo.CandidateExists(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.CandidateExists(ctx, id+1)
	require.NoError(t, err)
	assert.False(t, exists)
}
