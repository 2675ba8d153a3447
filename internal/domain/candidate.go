package domain

import (
	"context"
	"time"
)

// Candidate is a persisted candidate row. Optional text columns are pointers:
// a NULL column is nil, never "".
type Candidate struct {
	ID          int64     `json:"id"`
	FirstName   *string   `json:"firstName"`
	Surname     *string   `json:"surname"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Address     *string   `json:"address"`
	Town        *string   `json:"town"`
	Country     *string   `json:"country"`
	PostCode    *string   `json:"postCode"`
	PhoneHome   *string   `json:"phoneHome"`
	PhoneMobile *string   `json:"phoneMobile"`
	PhoneWork   *string   `json:"phoneWork"`
	CreatedDate time.Time `json:"createdDate"`
	UpdatedDate time.Time `json:"updatedDate"`
}

// CandidateRequest is the create/update payload.
type CandidateRequest struct {
	FirstName   string  `json:"firstName" validate:"required,notblank,max=100"`
	Surname     string  `json:"surname" validate:"required,notblank,max=100"`
	DateOfBirth *Date   `json:"dateOfBirth" validate:"required"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Town        *string `json:"town" validate:"omitempty,max=100"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	PostCode    *string `json:"postCode" validate:"omitempty,max=20"`
	PhoneHome   *string `json:"phoneHome" validate:"omitempty,max=50"`
	PhoneMobile string  `json:"phoneMobile" validate:"required,notblank"`
	PhoneWork   *string `json:"phoneWork" validate:"omitempty,max=50"`
}

// CandidateListItem is the summary row used by candidate listings.
type CandidateListItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DateOfBirth Date    `json:"dateOfBirth"`
	Town        *string `json:"town"`
	Phone       *string `json:"phone"`
}

// CandidateDetails is the full single-candidate view.
type CandidateDetails struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth Date      `json:"dateOfBirth"`
	Address     *string   `json:"address"`
	Town        *string   `json:"town"`
	Country     *string   `json:"country"`
	PostCode    *string   `json:"postCode"`
	PhoneHome   *string   `json:"phoneHome"`
	PhoneMobile *string   `json:"phoneMobile"`
	PhoneWork   *string   `json:"phoneWork"`
	CreatedDate time.Time `json:"createdDate"`
	UpdatedDate time.Time `json:"updatedDate"`
}

type CandidateRepository interface {
	GetAllCandidates(ctx context.Context) ([]Candidate, error)
	// GetCandidateByID returns nil, nil when no row matches.
	GetCandidateByID(ctx context.Context, id int64) (*Candidate, error)
	CreateCandidate(ctx context.Context, candidate *Candidate) (*Candidate, error)
	// UpdateExistingCandidate silently touches zero rows (nil, nil) for an
	// unknown id; callers check CandidateExists first.
	UpdateExistingCandidate(ctx context.Context, candidate *Candidate) (*Candidate, error)
	CandidateExists(ctx context.Context, id int64) (bool, error)
}

type CandidateUsecase interface {
	GetAllCandidates(ctx context.Context) ([]CandidateListItem, error)
	GetCandidateByID(ctx context.Context, id int64) (*CandidateDetails, error)
	CreateCandidate(ctx context.Context, req *CandidateRequest) (*CandidateDetails, error)
	UpdateExistingCandidate(ctx context.Context, id int64, req *CandidateRequest) (*CandidateDetails, error)
}
