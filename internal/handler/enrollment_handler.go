package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madibogo/records-backend/internal/model"
	"github.com/madibogo/records-backend/internal/response"
	"github.com/madibogo/records-backend/internal/service"
	"github.com/madibogo/records-backend/internal/validator"
)

// EnrollmentHandler handles enrollment, marks and status endpoints.
type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// ListForStudent godoc
// GET /api/enrollments/student/:id
// Lists a student's enrollments with module, semester and programme names.
func (h *EnrollmentHandler) ListForStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	records, err := h.enrollmentService.ListForStudent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

// ListMarksForStudent godoc
// GET /api/enrollments/student/:id/marks
// Lists a student's graded enrollments.
func (h *EnrollmentHandler) ListMarksForStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	records, err := h.enrollmentService.ListMarksForStudent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

// List godoc
// GET /api/enrollments
// Lists all enrollments, optionally filtered by module_code or semester_code.
func (h *EnrollmentHandler) List(c *gin.Context) {
	f := model.EnrollmentFilter{
		ModuleCode:   c.Query("module_code"),
		SemesterCode: c.Query("semester_code"),
	}

	records, err := h.enrollmentService.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

// ListMarks godoc
// GET /api/enrollments/marks
// Lists every recorded mark with student names.
func (h *EnrollmentHandler) ListMarks(c *gin.Context) {
	records, err := h.enrollmentService.ListMarks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

// Create godoc
// POST /api/enrollments
// Enrolls a student on a module for a semester.
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req model.CreateEnrollmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	id, err := h.enrollmentService.Enroll(c.Request.Context(), req.StudentID, req.ModuleCode, req.SemesterCode)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusCreated, "Student enrolled successfully", gin.H{"enrollmentId": id})
}

// RecordMark godoc
// PUT /api/enrollments/marks
// Records a mark and returns the derived grade.
func (h *EnrollmentHandler) RecordMark(c *gin.Context) {
	var req model.RecordMarkRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade, err := h.enrollmentService.RecordMark(c.Request.Context(), req.EnrollmentID, *req.MarkObtained)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Marks updated successfully", gin.H{"grade": grade})
}

// UpdateStatus godoc
// PUT /api/enrollments/:id/status
// Completes or withdraws an enrollment.
func (h *EnrollmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateEnrollmentStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.enrollmentService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Enrollment status updated", gin.H{
		"enrollmentId": id,
		"status":       req.Status,
	})
}

// Delete godoc
// DELETE /api/enrollments/:id
// Removes an enrollment.
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.enrollmentService.DeleteEnrollment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Enrollment deleted successfully", nil)
}
