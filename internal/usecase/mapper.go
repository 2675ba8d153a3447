package usecase

import (
	"strings"

	"candidate-service/internal/domain"
)

// candidateName joins first name and surname, treating nil parts as empty.
func candidateName(first, surname *string) string {
	var f, s string
	if first != nil {
		f = *first
	}
	if surname != nil {
		s = *surname
	}
	return strings.TrimSpace(f + " " + s)
}

// preferredPhone picks mobile, then home, then work.
func preferredPhone(c *domain.Candidate) *string {
	switch {
	case c.PhoneMobile != nil:
		return c.PhoneMobile
	case c.PhoneHome != nil:
		return c.PhoneHome
	default:
		return c.PhoneWork
	}
}

func toCandidateListItem(c *domain.Candidate) domain.CandidateListItem {
	return domain.CandidateListItem{
		ID:          c.ID,
		Name:        candidateName(c.FirstName, c.Surname),
		DateOfBirth: domain.NewDate(c.DateOfBirth),
		Town:        c.Town,
		Phone:       preferredPhone(c),
	}
}

func toCandidateDetails(c *domain.Candidate) *domain.CandidateDetails {
	return &domain.CandidateDetails{
		ID:          c.ID,
		Name:        candidateName(c.FirstName, c.Surname),
		DateOfBirth: domain.NewDate(c.DateOfBirth),
		Address:     c.Address,
		Town:        c.Town,
		Country:     c.Country,
		PostCode:    c.PostCode,
		PhoneHome:   c.PhoneHome,
		PhoneMobile: c.PhoneMobile,
		PhoneWork:   c.PhoneWork,
		CreatedDate: c.CreatedDate,
		UpdatedDate: c.UpdatedDate,
	}
}

// candidateFromRequest builds the entity to persist. Timestamps are left to
// the repository.
func candidateFromRequest(req *domain.CandidateRequest) *domain.Candidate {
	first, surname, mobile := req.FirstName, req.Surname, req.PhoneMobile
	c := &domain.Candidate{
		FirstName:   &first,
		Surname:     &surname,
		Address:     req.Address,
		Town:        req.Town,
		Country:     req.Country,
		PostCode:    req.PostCode,
		PhoneHome:   req.PhoneHome,
		PhoneMobile: &mobile,
		PhoneWork:   req.PhoneWork,
	}
	if req.DateOfBirth != nil {
		c.DateOfBirth = req.DateOfBirth.Time
	}
	return c
}

func toSkillResponses(skills []domain.Skill) []domain.SkillResponse {
	out := make([]domain.SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, domain.SkillResponse{ID: s.ID, Name: s.Name})
	}
	return out
}

func toCandidateSkillResponses(skills []domain.CandidateSkill) []domain.CandidateSkillResponse {
	out := make([]domain.CandidateSkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, domain.CandidateSkillResponse{
			CandidateSkillID: s.ID,
			SkillID:          s.SkillID,
			Name:             s.SkillName,
		})
	}
	return out
}
