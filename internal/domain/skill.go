package domain

import (
	"context"
	"time"
)

// Skill is a reference row. Timestamps are nullable because older skills
// predate timestamp tracking.
type Skill struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	CreatedDate *time.Time `json:"createdDate"`
	UpdatedDate *time.Time `json:"updatedDate"`
}

// CandidateSkill is a candidate_skill join row. SkillName is filled only by
// the join read and is never written back.
type CandidateSkill struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidateId"`
	SkillID     int64     `json:"skillId"`
	SkillName   string    `json:"skillName"`
	CreatedDate time.Time `json:"createdDate"`
	UpdatedDate time.Time `json:"updatedDate"`
}

type CandidateSkillRequest struct {
	CandidateID int64 `json:"candidateId" validate:"required,gt=0"`
	SkillID     int64 `json:"skillId" validate:"required,gt=0"`
}

type SkillResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CandidateSkillResponse struct {
	CandidateSkillID int64  `json:"candidateSkillId"`
	SkillID          int64  `json:"skillId"`
	Name             string `json:"name"`
}

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]Skill, error)
	GetSkillsByCandidateID(ctx context.Context, candidateID int64) ([]CandidateSkill, error)
	// AddSkillByCandidateID fails with ErrSkillAlreadyAssigned for a duplicate pair.
	AddSkillByCandidateID(ctx context.Context, candidateID, skillID int64) ([]CandidateSkill, error)
	// RemoveSkillByID returns the owning candidate id and its remaining skills.
	// It fails with ErrCandidateSkillNotFound for a negative or unknown id.
	RemoveSkillByID(ctx context.Context, candidateSkillID int64) (int64, []CandidateSkill, error)
	RemoveSkillByCandidateID(ctx context.Context, candidateID, skillID int64) ([]CandidateSkill, error)
	SkillExists(ctx context.Context, skillID int64) (bool, error)
	SkillExistsForCandidate(ctx context.Context, skillID, candidateID int64) (bool, error)
	CandidateSkillExists(ctx context.Context, candidateSkillID int64) (bool, error)
}

type SkillUsecase interface {
	GetAllSkills(ctx context.Context) ([]SkillResponse, error)
	GetSkillsByCandidateID(ctx context.Context, candidateID int64) ([]CandidateSkillResponse, error)
	AddSkillByCandidateID(ctx context.Context, req *CandidateSkillRequest) ([]CandidateSkillResponse, error)
	RemoveSkillByID(ctx context.Context, candidateSkillID int64) (int64, []CandidateSkillResponse, error)
	RemoveSkillByCandidateID(ctx context.Context, candidateID, skillID int64) ([]CandidateSkillResponse, error)
}
