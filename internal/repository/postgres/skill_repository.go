package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"candidate-service/internal/domain"
	"candidate-service/pkg/database"
)

type skillRepository struct {
	db  database.DB
	ids *IdentityGenerator
	now func() time.Time
}

func NewSkillRepository(db database.DB) domain.SkillRepository {
	return newSkillRepository(db, utcNow)
}

func newSkillRepository(db database.DB, now func() time.Time) *skillRepository {
	return &skillRepository{db: db, ids: NewIdentityGenerator(db), now: now}
}

func scanSkill(row rowScanner) (*domain.Skill, error) {
	var s domain.Skill
	if err := row.Scan(&s.ID, &s.Name, &s.CreatedDate, &s.UpdatedDate); err != nil {
		return nil, err
	}
	if s.CreatedDate != nil {
		utc := s.CreatedDate.UTC()
		s.CreatedDate = &utc
	}
	if s.UpdatedDate != nil {
		utc := s.UpdatedDate.UTC()
		s.UpdatedDate = &utc
	}
	return &s, nil
}

// scanCandidateSkill decodes one row selected with candidateSkillJoinColumns.
func scanCandidateSkill(row rowScanner) (*domain.CandidateSkill, error) {
	var cs domain.CandidateSkill
	err := row.Scan(&cs.ID, &cs.CandidateID, &cs.SkillID, &cs.SkillName, &cs.CreatedDate, &cs.UpdatedDate)
	if err != nil {
		return nil, err
	}
	cs.CreatedDate = cs.CreatedDate.UTC()
	cs.UpdatedDate = cs.UpdatedDate.UTC()
	return &cs, nil
}

func (r *skillRepository) GetAllSkills(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skill ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

func (r *skillRepository) GetSkillsByCandidateID(ctx context.Context, candidateID int64) ([]domain.CandidateSkill, error) {
	query := `
		SELECT ` + candidateSkillJoinColumns + `
		FROM skill s
		INNER JOIN candidate_skill cs ON cs.skill_id = s.id
		WHERE cs.candidate_id = $1
		ORDER BY cs.id`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list skills for candidate %d: %w", candidateID, err)
	}
	defer rows.Close()

	skills := []domain.CandidateSkill{}
	for rows.Next() {
		cs, err := scanCandidateSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate skill: %w", err)
		}
		skills = append(skills, *cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list skills for candidate %d: %w", candidateID, err)
	}
	return skills, nil
}

func (r *skillRepository) AddSkillByCandidateID(ctx context.Context, candidateID, skillID int64) ([]domain.CandidateSkill, error) {
	assigned, err := r.SkillExistsForCandidate(ctx, skillID, candidateID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, fmt.Errorf("candidate %d, skill %d: %w", candidateID, skillID, domain.ErrSkillAlreadyAssigned)
	}

	id, err := r.ids.GenerateIdentity(ctx, tableCandidateSkill)
	if err != nil {
		return nil, fmt.Errorf("add skill: %w", err)
	}
	now := r.now()

	query := `
		INSERT INTO candidate_skill (id, candidate_id, skill_id, created_date, updated_date)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.Exec(ctx, query, id, candidateID, skillID, now, now); err != nil {
		return nil, fmt.Errorf("add skill %d to candidate %d: %w", skillID, candidateID, err)
	}

	return r.GetSkillsByCandidateID(ctx, candidateID)
}

func (r *skillRepository) RemoveSkillByID(ctx context.Context, candidateSkillID int64) (int64, []domain.CandidateSkill, error) {
	if candidateSkillID < 0 {
		return 0, nil, fmt.Errorf("candidate skill %d: %w", candidateSkillID, domain.ErrCandidateSkillNotFound)
	}

	// Capture the owner in the same statement so the refreshed list cannot
	// come from a different row.
	query := `DELETE FROM candidate_skill WHERE id = $1 RETURNING candidate_id`

	var candidateID int64
	if err := r.db.QueryRow(ctx, query, candidateSkillID).Scan(&candidateID); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return 0, nil, fmt.Errorf("candidate skill %d: %w", candidateSkillID, domain.ErrCandidateSkillNotFound)
		}
		return 0, nil, fmt.Errorf("remove candidate skill %d: %w", candidateSkillID, err)
	}

	skills, err := r.GetSkillsByCandidateID(ctx, candidateID)
	if err != nil {
		return 0, nil, err
	}
	return candidateID, skills, nil
}

func (r *skillRepository) RemoveSkillByCandidateID(ctx context.Context, candidateID, skillID int64) ([]domain.CandidateSkill, error) {
	query := `DELETE FROM candidate_skill WHERE candidate_id = $1 AND skill_id = $2`

	affected, err := r.db.Exec(ctx, query, candidateID, skillID)
	if err != nil {
		return nil, fmt.Errorf("remove skill %d from candidate %d: %w", skillID, candidateID, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("candidate %d, skill %d: %w", candidateID, skillID, domain.ErrCandidateSkillNotFound)
	}

	return r.GetSkillsByCandidateID(ctx, candidateID)
}

func (r *skillRepository) SkillExists(ctx context.Context, skillID int64) (bool, error) {
	return r.count(ctx, "skill exists", `SELECT COUNT(1) FROM skill WHERE id = $1`, skillID)
}

func (r *skillRepository) SkillExistsForCandidate(ctx context.Context, skillID, candidateID int64) (bool, error) {
	return r.count(ctx, "skill assigned",
		`SELECT COUNT(1) FROM candidate_skill WHERE candidate_id = $1 AND skill_id = $2`,
		candidateID, skillID)
}

func (r *skillRepository) CandidateSkillExists(ctx context.Context, candidateSkillID int64) (bool, error) {
	return r.count(ctx, "candidate skill exists", `SELECT COUNT(1) FROM candidate_skill WHERE id = $1`, candidateSkillID)
}

func (r *skillRepository) count(ctx context.Context, what, query string, args ...any) (bool, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("check %s: %w", what, err)
	}
	return n > 0, nil
}
