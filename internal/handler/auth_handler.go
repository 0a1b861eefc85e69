package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madibogo/records-backend/internal/middleware"
	"github.com/madibogo/records-backend/internal/model"
	"github.com/madibogo/records-backend/internal/response"
	"github.com/madibogo/records-backend/internal/service"
	"github.com/madibogo/records-backend/internal/validator"
)

// AuthHandler handles login, token verification and logout.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /api/auth/login
// Authenticates a student or admin and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	res, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Login successful", res)
}

// Verify godoc
// GET /api/auth/verify
// Confirms the bearer token is valid and returns its principal.
func (h *AuthHandler) Verify(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"valid": true,
		"user":  middleware.GetPrincipal(c),
	})
}

// Logout godoc
// POST /api/auth/logout
// Revokes the bearer token when a denylist is configured.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.RevokeToken(c.Request.Context(), middleware.GetClaims(c)); err != nil {
		respondError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Logged out successfully", gin.H{
		"revoked": h.authService.RevocationEnabled(),
	})
}
