package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"candidate-service/internal/domain"
	"candidate-service/pkg/apperror"
	"candidate-service/pkg/logger"
	"candidate-service/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) GetAllCandidates(ctx context.Context) ([]domain.CandidateListItem, error) {
	candidates, err := u.repo.GetAllCandidates(ctx)
	if err != nil {
		return nil, internalError(ctx, "list candidates", err)
	}

	items := make([]domain.CandidateListItem, 0, len(candidates))
	for i := range candidates {
		items = append(items, toCandidateListItem(&candidates[i]))
	}
	return items, nil
}

func (u *candidateUsecase) GetCandidateByID(ctx context.Context, id int64) (*domain.CandidateDetails, error) {
	if id <= 0 {
		return nil, candidateNotFound(id)
	}

	candidate, err := u.repo.GetCandidateByID(ctx, id)
	if err != nil {
		return nil, internalError(ctx, "get candidate", err)
	}
	if candidate == nil {
		return nil, candidateNotFound(id)
	}
	return toCandidateDetails(candidate), nil
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, req *domain.CandidateRequest) (*domain.CandidateDetails, error) {
	if err := u.validateRequest(req); err != nil {
		return nil, err
	}

	created, err := u.repo.CreateCandidate(ctx, candidateFromRequest(req))
	if err != nil {
		return nil, internalError(ctx, "create candidate", err)
	}
	if created == nil || created.ID <= 0 {
		return nil, internalError(ctx, "create candidate", errors.New("candidate was not persisted"))
	}

	logger.Log.InfoContext(ctx, "candidate created", "candidate_id", created.ID)
	return toCandidateDetails(created), nil
}

func (u *candidateUsecase) UpdateExistingCandidate(ctx context.Context, id int64, req *domain.CandidateRequest) (*domain.CandidateDetails, error) {
	if err := u.validateRequest(req); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, candidateNotFound(id)
	}

	exists, err := u.repo.CandidateExists(ctx, id)
	if err != nil {
		return nil, internalError(ctx, "check candidate", err)
	}
	if !exists {
		return nil, candidateNotFound(id)
	}

	candidate := candidateFromRequest(req)
	candidate.ID = id

	updated, err := u.repo.UpdateExistingCandidate(ctx, candidate)
	if err != nil {
		return nil, internalError(ctx, "update candidate", err)
	}
	if updated == nil {
		// deleted between the existence check and the update
		return nil, candidateNotFound(id)
	}
	return toCandidateDetails(updated), nil
}

func (u *candidateUsecase) validateRequest(req *domain.CandidateRequest) error {
	if req == nil {
		return apperror.BadRequestWrap("Request body is required", domain.ErrInvalidInput)
	}

	var messages []string
	if err := u.validate.Struct(req); err != nil {
		messages = validation.FormatValidationErrors(err)
	}
	if req.DateOfBirth != nil && req.DateOfBirth.IsZero() {
		messages = append(messages, "Date of birth: is required")
	}
	if len(messages) > 0 {
		return apperror.BadRequestWrap(strings.Join(messages, "; "), domain.ErrInvalidInput)
	}
	return nil
}

func candidateNotFound(id int64) error {
	return apperror.NotFoundWrap(fmt.Sprintf("Candidate with id %d not found", id), domain.ErrNotFound)
}

// internalError logs a data-access failure and hides it behind a generic 500.
func internalError(ctx context.Context, op string, err error) error {
	logger.Log.ErrorContext(ctx, op+" failed", "error", err)
	return apperror.Internal(fmt.Errorf("%s: %w", op, err))
}
