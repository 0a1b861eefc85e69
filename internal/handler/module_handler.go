package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madibogo/records-backend/internal/model"
	"github.com/madibogo/records-backend/internal/response"
	"github.com/madibogo/records-backend/internal/service"
	"github.com/madibogo/records-backend/internal/validator"
)

// ModuleHandler handles module catalogue endpoints.
type ModuleHandler struct {
	moduleService *service.ModuleService
}

// NewModuleHandler creates a new ModuleHandler.
func NewModuleHandler(moduleService *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{moduleService: moduleService}
}

// List godoc
// GET /api/modules
func (h *ModuleHandler) List(c *gin.Context) {
	modules, err := h.moduleService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, modules)
}

// ListByProgramme godoc
// GET /api/modules/programme/:code
func (h *ModuleHandler) ListByProgramme(c *gin.Context) {
	modules, err := h.moduleService.ListByProgramme(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, modules)
}

// Get godoc
// GET /api/modules/:code
func (h *ModuleHandler) Get(c *gin.Context) {
	m, err := h.moduleService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Create godoc
// POST /api/modules
func (h *ModuleHandler) Create(c *gin.Context) {
	var req model.CreateModuleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	m, err := h.moduleService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusCreated, "Module created successfully", m)
}

// Update godoc
// PUT /api/modules/:code
func (h *ModuleHandler) Update(c *gin.Context) {
	var req model.UpdateModuleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	m, err := h.moduleService.Update(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Module updated successfully", m)
}

// Delete godoc
// DELETE /api/modules/:code
// Fails with HAS_DEPENDENTS while any enrollment references the module.
func (h *ModuleHandler) Delete(c *gin.Context) {
	if err := h.moduleService.Delete(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Module deleted successfully", nil)
}
