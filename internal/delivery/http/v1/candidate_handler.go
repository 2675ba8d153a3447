package v1

import (
	"net/http"
	"strconv"

	"candidate-service/internal/delivery/http/response"
	"candidate-service/internal/domain"
	"candidate-service/pkg/apperror"
	"candidate-service/pkg/audit"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	audit       *audit.Logger
}

func NewCandidateHandler(public, writes *gin.RouterGroup, candidateUC domain.CandidateUsecase, auditLog *audit.Logger) {
	handler := &CandidateHandler{candidateUC: candidateUC, audit: auditLog}

	candidates := public.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
	}

	mutations := writes.Group("/candidates")
	{
		mutations.POST("", handler.Create)
		mutations.PUT("/:id", handler.Update)
	}
}

// parseID reads an integer path parameter. Range checks belong to the usecases.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		_ = c.Error(apperror.BadRequest("Invalid " + name))
		return 0, false
	}
	return id, true
}

// record stamps ev with the caller's address and request id and logs it.
func record(c *gin.Context, l *audit.Logger, ev audit.Event) {
	ev.IP = c.ClientIP()
	ev.RequestID = response.RequestID(c)
	l.Log(c.Request.Context(), ev)
}

// List godoc
// @Summary      List candidates
// @Description  Summary of every candidate, ordered by id
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CandidateListItem}
// @Failure      500  {object}  response.Response
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	items, err := h.candidateUC.GetAllCandidates(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates retrieved", items)
}

// Get godoc
// @Summary      Get candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.CandidateDetails}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	details, err := h.candidateUC.GetCandidateByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate retrieved", details)
}

// Create godoc
// @Summary      Create candidate
// @Description  firstName, surname, phoneMobile and dateOfBirth are required
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CandidateRequest  true  "Candidate JSON"
// @Success      201        {object}  response.Response{data=domain.CandidateDetails}
// @Failure      400        {object}  response.Response
// @Failure      429        {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req domain.CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequestWrap("Invalid request body", err))
		return
	}

	details, err := h.candidateUC.CreateCandidate(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	record(c, h.audit, audit.Event{Event: audit.EventCandidateCreated, CandidateID: details.ID})
	c.Header("Location", "/v1/candidates/"+strconv.FormatInt(details.ID, 10))
	response.Success(c, http.StatusCreated, "Candidate created", details)
}

// Update godoc
// @Summary      Update candidate
// @Description  Replaces every mutable field of an existing candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path      int                      true  "Candidate ID"
// @Param        candidate  body      domain.CandidateRequest  true  "Candidate JSON"
// @Success      200        {object}  response.Response{data=domain.CandidateDetails}
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req domain.CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequestWrap("Invalid request body", err))
		return
	}

	details, err := h.candidateUC.UpdateExistingCandidate(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	record(c, h.audit, audit.Event{Event: audit.EventCandidateUpdated, CandidateID: details.ID})
	response.Success(c, http.StatusOK, "Candidate updated", details)
}
