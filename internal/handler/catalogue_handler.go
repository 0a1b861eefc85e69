package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madibogo/records-backend/internal/response"
	"github.com/madibogo/records-backend/internal/service"
)

// CatalogueHandler serves the public programme and semester listings.
type CatalogueHandler struct {
	catalogueService *service.CatalogueService
}

// NewCatalogueHandler creates a new CatalogueHandler.
func NewCatalogueHandler(catalogueService *service.CatalogueService) *CatalogueHandler {
	return &CatalogueHandler{catalogueService: catalogueService}
}

// ListProgrammes godoc
// GET /api/programmes
func (h *CatalogueHandler) ListProgrammes(c *gin.Context) {
	programmes, err := h.catalogueService.ListProgrammes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, programmes)
}

// ListSemesters godoc
// GET /api/semesters
func (h *CatalogueHandler) ListSemesters(c *gin.Context) {
	semesters, err := h.catalogueService.ListSemesters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, semesters)
}
