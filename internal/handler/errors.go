package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/madibogo/records-backend/internal/response"
	"github.com/madibogo/records-backend/internal/service"
)

// respondError writes the envelope for a service error. Unclassified errors
// are attached to the context for the request logger and answered with a
// generic 500.
func respondError(c *gin.Context, err error) {
	status, code := classify(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	response.Fail(c, status, code)
}

func classify(err error) (int, response.ErrCode) {
	switch {
	case errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, response.ErrInvalidCredentials
	case errors.Is(err, service.ErrTokenMissing), errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, response.ErrTokenRequired
	case errors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, response.ErrTokenExpired
	case errors.Is(err, service.ErrTokenRevoked):
		return http.StatusUnauthorized, response.ErrTokenRevoked
	case errors.Is(err, service.ErrTokenMalformed):
		return http.StatusUnauthorized, response.ErrTokenInvalid

	case errors.Is(err, service.ErrAccessDenied):
		return http.StatusForbidden, response.ErrForbidden

	case errors.Is(err, service.ErrMarkOutOfRange):
		return http.StatusBadRequest, response.ErrMarkOutOfRange
	case errors.Is(err, service.ErrInvalidReference):
		return http.StatusBadRequest, response.ErrInvalidReference
	case errors.Is(err, service.ErrInvalidTransition):
		return http.StatusBadRequest, response.ErrInvalidTransition
	case errors.Is(err, service.ErrDuplicateEnrollment):
		return http.StatusBadRequest, response.ErrDuplicateEnrollment
	case errors.Is(err, service.ErrHasDependents):
		return http.StatusBadRequest, response.ErrHasDependents

	case errors.Is(err, service.ErrEnrollmentNotFound),
		errors.Is(err, service.ErrModuleNotFound),
		errors.Is(err, service.ErrStudentNotFound):
		return http.StatusNotFound, response.ErrNotFound

	case errors.Is(err, service.ErrModuleExists), errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, response.ErrConflict
	}
	return http.StatusInternalServerError, response.ErrInternal
}

// paramID parses a positive integer path parameter, answering 400 when it
// is not one.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}
