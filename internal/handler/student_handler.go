package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/madibogo/records-backend/internal/model"
	"github.com/madibogo/records-backend/internal/response"
	"github.com/madibogo/records-backend/internal/service"
	"github.com/madibogo/records-backend/internal/validator"
)

// StudentHandler handles student profile and admin student management.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// List godoc
// GET /api/students
// Lists students with pagination, optionally filtered by programme, status or a search term.
func (h *StudentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	f := model.StudentFilter{
		ProgrammeCode: c.Query("programme"),
		Status:        model.StudentStatus(c.Query("status")),
		Search:        c.Query("search"),
	}
	switch f.Status {
	case "", model.StudentActive, model.StudentInactive, model.StudentGraduated, model.StudentWithdrawn:
	default:
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{
			"status": "status must be one of [Active Inactive Graduated Withdrawn]",
		})
		return
	}

	students, pagination, err := h.studentService.List(c.Request.Context(), f, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, students, pagination)
}

// Get godoc
// GET /api/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	st, err := h.studentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st)
}

// Create godoc
// POST /api/students
// Creates a student account; the password is stored hashed.
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	st, err := h.studentService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusCreated, "Student created successfully", st)
}

// Update godoc
// PUT /api/students/:id
// Updates a student's details, and optionally their password.
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	st, err := h.studentService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Student updated successfully", st)
}

// Delete godoc
// DELETE /api/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Student deleted successfully", nil)
}
