package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"candidate-service/internal/domain"
	"candidate-service/pkg/database"
)

type candidateRepository struct {
	db  database.DB
	ids *IdentityGenerator
	now func() time.Time
}

func NewCandidateRepository(db database.DB) domain.CandidateRepository {
	return newCandidateRepository(db, utcNow)
}

func newCandidateRepository(db database.DB, now func() time.Time) *candidateRepository {
	return &candidateRepository{db: db, ids: NewIdentityGenerator(db), now: now}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCandidate decodes one row selected with candidateColumns.
func scanCandidate(row rowScanner) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.FirstName, &c.Surname, &c.DateOfBirth,
		&c.Address, &c.Town, &c.Country, &c.PostCode,
		&c.PhoneHome, &c.PhoneMobile, &c.PhoneWork,
		&c.CreatedDate, &c.UpdatedDate,
	)
	if err != nil {
		return nil, err
	}
	c.DateOfBirth = c.DateOfBirth.UTC()
	c.CreatedDate = c.CreatedDate.UTC()
	c.UpdatedDate = c.UpdatedDate.UTC()
	return &c, nil
}

func (r *candidateRepository) GetAllCandidates(ctx context.Context) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) GetCandidateByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate WHERE id = $1`

	c, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candidate %d: %w", id, err)
	}
	return c, nil
}

func (r *candidateRepository) CreateCandidate(ctx context.Context, candidate *domain.Candidate) (*domain.Candidate, error) {
	id, err := r.ids.GenerateIdentity(ctx, tableCandidate)
	if err != nil {
		return nil, fmt.Errorf("create candidate: %w", err)
	}
	now := r.now()

	query := `
		INSERT INTO candidate (
			id, first_name, surname, date_of_birth, address, town, country,
			post_code, phone_home, phone_mobile, phone_work, created_date, updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.db.Exec(ctx, query,
		id, candidate.FirstName, candidate.Surname, candidate.DateOfBirth,
		candidate.Address, candidate.Town, candidate.Country, candidate.PostCode,
		candidate.PhoneHome, candidate.PhoneMobile, candidate.PhoneWork,
		now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("create candidate %d: %w", id, err)
	}

	created, err := r.GetCandidateByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload created candidate: %w", err)
	}
	return created, nil
}

func (r *candidateRepository) UpdateExistingCandidate(ctx context.Context, candidate *domain.Candidate) (*domain.Candidate, error) {
	query := `
		UPDATE candidate SET
			first_name = $1, surname = $2, date_of_birth = $3, address = $4,
			town = $5, country = $6, post_code = $7, phone_home = $8,
			phone_mobile = $9, phone_work = $10, updated_date = $11
		WHERE id = $12`

	affected, err := r.db.Exec(ctx, query,
		candidate.FirstName, candidate.Surname, candidate.DateOfBirth, candidate.Address,
		candidate.Town, candidate.Country, candidate.PostCode, candidate.PhoneHome,
		candidate.PhoneMobile, candidate.PhoneWork, r.now(),
		candidate.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update candidate %d: %w", candidate.ID, err)
	}
	if affected == 0 {
		return nil, nil
	}

	updated, err := r.GetCandidateByID(ctx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("reload updated candidate: %w", err)
	}
	return updated, nil
}

func (r *candidateRepository) CandidateExists(ctx context.Context, id int64) (bool, error) {
	c, err := r.GetCandidateByID(ctx, id)
	if err != nil {
		return false, err
	}
	return c != nil, nil
}
