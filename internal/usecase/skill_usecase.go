package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"candidate-service/internal/domain"
	"candidate-service/pkg/apperror"
	"candidate-service/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type skillUsecase struct {
	repo          domain.SkillRepository
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
}

func NewSkillUsecase(repo domain.SkillRepository, candidateRepo domain.CandidateRepository, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{
		repo:          repo,
		candidateRepo: candidateRepo,
		validate:      validate,
	}
}

func (u *skillUsecase) GetAllSkills(ctx context.Context) ([]domain.SkillResponse, error) {
	skills, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, internalError(ctx, "list skills", err)
	}
	return toSkillResponses(skills), nil
}

func (u *skillUsecase) GetSkillsByCandidateID(ctx context.Context, candidateID int64) ([]domain.CandidateSkillResponse, error) {
	skills, err := u.repo.GetSkillsByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, internalError(ctx, "list candidate skills", err)
	}
	return toCandidateSkillResponses(skills), nil
}

func (u *skillUsecase) AddSkillByCandidateID(ctx context.Context, req *domain.CandidateSkillRequest) ([]domain.CandidateSkillResponse, error) {
	if req == nil {
		return nil, apperror.BadRequestWrap("Request body is required", domain.ErrInvalidInput)
	}
	if err := u.validate.Struct(req); err != nil {
		msg := strings.Join(validation.FormatValidationErrors(err), "; ")
		return nil, apperror.BadRequestWrap(msg, domain.ErrInvalidInput)
	}

	skillExists, err := u.repo.SkillExists(ctx, req.SkillID)
	if err != nil {
		return nil, internalError(ctx, "check skill", err)
	}
	if !skillExists {
		return nil, apperror.NotFoundWrap(fmt.Sprintf("Skill with id %d not found", req.SkillID), domain.ErrNotFound)
	}

	candidateExists, err := u.candidateRepo.CandidateExists(ctx, req.CandidateID)
	if err != nil {
		return nil, internalError(ctx, "check candidate", err)
	}
	if !candidateExists {
		return nil, candidateNotFound(req.CandidateID)
	}

	skills, err := u.repo.AddSkillByCandidateID(ctx, req.CandidateID, req.SkillID)
	if err != nil {
		if errors.Is(err, domain.ErrSkillAlreadyAssigned) {
			return nil, apperror.Conflict(
				fmt.Sprintf("Skill %d is already assigned to candidate %d", req.SkillID, req.CandidateID), err)
		}
		return nil, internalError(ctx, "add skill", err)
	}
	return toCandidateSkillResponses(skills), nil
}

func (u *skillUsecase) RemoveSkillByID(ctx context.Context, candidateSkillID int64) (int64, []domain.CandidateSkillResponse, error) {
	candidateID, skills, err := u.repo.RemoveSkillByID(ctx, candidateSkillID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil, apperror.NotFoundWrap(
				fmt.Sprintf("Candidate skill with id %d not found", candidateSkillID), err)
		}
		return 0, nil, internalError(ctx, "remove skill", err)
	}
	return candidateID, toCandidateSkillResponses(skills), nil
}

func (u *skillUsecase) RemoveSkillByCandidateID(ctx context.Context, candidateID, skillID int64) ([]domain.CandidateSkillResponse, error) {
	skills, err := u.repo.RemoveSkillByCandidateID(ctx, candidateID, skillID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFoundWrap(
				fmt.Sprintf("Skill %d is not assigned to candidate %d", skillID, candidateID), err)
		}
		return nil, internalError(ctx, "remove candidate skill", err)
	}
	return toCandidateSkillResponses(skills), nil
}
