package v1

import (
	"net/http"
	"strings"

	"candidate-service/internal/domain"
	"candidate-service/pkg/audit"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportUC domain.ExportUsecase
	audit    *audit.Logger
}

// NewExportHandler mounts the export route on limited; exports scan every
// candidate so they share the write budget.
func NewExportHandler(limited *gin.RouterGroup, exportUC domain.ExportUsecase, auditLog *audit.Logger) {
	handler := &ExportHandler{exportUC: exportUC, audit: auditLog}
	limited.GET("/export/candidates", handler.ExportCandidates)
}

// ExportCandidates godoc
// @Summary      Export candidates to Excel/CSV
// @Description  Downloads every candidate as an Excel or CSV file
// @Tags         candidates
// @Produce      application/octet-stream
// @Param        format   query     string  false  "Export format (xlsx, csv). Default: xlsx"
// @Param        columns  query     string  false  "Comma-separated column names to include"
// @Success      200      {file}    binary
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /export/candidates [get]
func (h *ExportHandler) ExportCandidates(c *gin.Context) {
	req := domain.ExportRequest{Format: c.DefaultQuery("format", domain.ExportFormatXLSX)}
	if cols := c.Query("columns"); cols != "" {
		req.Columns = strings.Split(cols, ",")
	}

	file, err := h.exportUC.ExportCandidates(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	record(c, h.audit, audit.Event{
		Event:   audit.EventCandidatesExported,
		Details: map[string]any{"format": req.Format, "bytes": len(file.Data)},
	})
	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
