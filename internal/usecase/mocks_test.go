package usecase_test

import (
	"context"

	"candidate-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetAllCandidates(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetCandidateByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) CreateCandidate(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) UpdateExistingCandidate(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) CandidateExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) skills(args mock.Arguments) ([]domain.CandidateSkill, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateSkill), args.Error(1)
}

func (m *MockSkillRepo) GetAllSkills(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) GetSkillsByCandidateID(ctx context.Context, candidateID int64) ([]domain.CandidateSkill, error) {
	return m.skills(m.Called(ctx, candidateID))
}

func (m *MockSkillRepo) AddSkillByCandidateID(ctx context.Context, candidateID, skillID int64) ([]domain.CandidateSkill, error) {
	return m.skills(m.Called(ctx, candidateID, skillID))
}

// RemoveSkillByID expects Return(candidateID, skills, err).
func (m *MockSkillRepo) RemoveSkillByID(ctx context.Context, candidateSkillID int64) (int64, []domain.CandidateSkill, error) {
	args := m.Called(ctx, candidateSkillID)
	skills, err := m.skills(mock.Arguments{args.Get(1), args.Get(2)})
	return args.Get(0).(int64), skills, err
}

func (m *MockSkillRepo) RemoveSkillByCandidateID(ctx context.Context, candidateID, skillID int64) ([]domain.CandidateSkill, error) {
	return m.skills(m.Called(ctx, candidateID, skillID))
}

func (m *MockSkillRepo) SkillExists(ctx context.Context, skillID int64) (bool, error) {
	args := m.Called(ctx, skillID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSkillRepo) SkillExistsForCandidate(ctx context.Context, skillID, candidateID int64) (bool, error) {
	args := m.Called(ctx, skillID, candidateID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSkillRepo) CandidateSkillExists(ctx context.Context, candidateSkillID int64) (bool, error) {
	args := m.Called(ctx, candidateSkillID)
	return args.Bool(0), args.Error(1)
}
