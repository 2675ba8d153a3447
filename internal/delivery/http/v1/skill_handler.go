package v1

import (
	"net/http"

	"candidate-service/internal/delivery/http/response"
	"candidate-service/internal/domain"
	"candidate-service/pkg/apperror"
	"candidate-service/pkg/audit"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
	audit   *audit.Logger
}

func NewSkillHandler(public, writes *gin.RouterGroup, skillUC domain.SkillUsecase, auditLog *audit.Logger) {
	handler := &SkillHandler{skillUC: skillUC, audit: auditLog}

	skills := public.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.GET("/candidate/:candidateId", handler.ListForCandidate)
	}

	mutations := writes.Group("/skills")
	{
		mutations.POST("", handler.Add)
		mutations.DELETE("/:candidateSkillId", handler.Remove)
		mutations.DELETE("/candidate/:candidateId/:skillId", handler.RemoveForCandidate)
	}
}

// List godoc
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.SkillResponse}
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.GetAllSkills(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

// ListForCandidate godoc
// @Summary      List a candidate's skills
// @Tags         skills
// @Produce      json
// @Param        candidateId  path      int  true  "Candidate ID"
// @Success      200          {object}  response.Response{data=[]domain.CandidateSkillResponse}
// @Failure      400          {object}  response.Response
// @Router       /skills/candidate/{candidateId} [get]
func (h *SkillHandler) ListForCandidate(c *gin.Context) {
	candidateID, ok := parseID(c, "candidateId")
	if !ok {
		return
	}

	skills, err := h.skillUC.GetSkillsByCandidateID(c.Request.Context(), candidateID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate skills retrieved", skills)
}

// Add godoc
// @Summary      Assign a skill to a candidate
// @Description  Returns the candidate's refreshed skill list
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        assignment  body      domain.CandidateSkillRequest  true  "Assignment JSON"
// @Success      201         {object}  response.Response{data=[]domain.CandidateSkillResponse}
// @Failure      400         {object}  response.Response  "invalid ids or skill already assigned"
// @Failure      404         {object}  response.Response  "unknown candidate or skill"
// @Router       /skills [post]
func (h *SkillHandler) Add(c *gin.Context) {
	var req domain.CandidateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequestWrap("Invalid request body", err))
		return
	}

	skills, err := h.skillUC.AddSkillByCandidateID(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	record(c, h.audit, audit.Event{Event: audit.EventSkillAssigned, CandidateID: req.CandidateID, SkillID: req.SkillID})
	response.Success(c, http.StatusCreated, "Skill assigned", skills)
}

// Remove godoc
// @Summary      Remove a skill assignment
// @Description  Returns the owning candidate's refreshed skill list
// @Tags         skills
// @Produce      json
// @Param        candidateSkillId  path      int  true  "Candidate skill ID"
// @Success      200               {object}  response.Response{data=[]domain.CandidateSkillResponse}
// @Failure      404               {object}  response.Response
// @Router       /skills/{candidateSkillId} [delete]
func (h *SkillHandler) Remove(c *gin.Context) {
	candidateSkillID, ok := parseID(c, "candidateSkillId")
	if !ok {
		return
	}

	candidateID, skills, err := h.skillUC.RemoveSkillByID(c.Request.Context(), candidateSkillID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	record(c, h.audit, audit.Event{
		Event:       audit.EventSkillRemoved,
		CandidateID: candidateID,
		Details:     map[string]any{"candidate_skill_id": candidateSkillID},
	})
	response.Success(c, http.StatusOK, "Skill removed", skills)
}

// RemoveForCandidate godoc
// @Summary      Remove a skill from a candidate
// @Tags         skills
// @Produce      json
// @Param        candidateId  path      int  true  "Candidate ID"
// @Param        skillId      path      int  true  "Skill ID"
// @Success      200          {object}  response.Response{data=[]domain.CandidateSkillResponse}
// @Failure      404          {object}  response.Response
// @Router       /skills/candidate/{candidateId}/{skillId} [delete]
func (h *SkillHandler) RemoveForCandidate(c *gin.Context) {
	candidateID, ok := parseID(c, "candidateId")
	if !ok {
		return
	}
	skillID, ok := parseID(c, "skillId")
	if !ok {
		return
	}

	skills, err := h.skillUC.RemoveSkillByCandidateID(c.Request.Context(), candidateID, skillID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	record(c, h.audit, audit.Event{Event: audit.EventSkillRemoved, CandidateID: candidateID, SkillID: skillID})
	response.Success(c, http.StatusOK, "Skill removed", skills)
}
