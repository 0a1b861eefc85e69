package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madibogo/records-backend/internal/response"
	"github.com/madibogo/records-backend/internal/service"
)

// ReportHandler serves registry reports.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary godoc
// GET /api/reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	sum, err := h.reportService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sum)
}

// Transcript godoc
// GET /api/reports/students/:id/transcript
func (h *ReportHandler) Transcript(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	t, err := h.reportService.Transcript(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}
