package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by repositories and usecases. Repositories wrap these
// (or the specific variants below) so callers can classify with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrSkillAlreadyAssigned   = fmt.Errorf("skill already assigned to candidate: %w", ErrConflict)
	ErrCandidateSkillNotFound = fmt.Errorf("candidate skill %w", ErrNotFound)
)
