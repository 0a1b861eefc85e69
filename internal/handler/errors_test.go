package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/madibogo/records-backend/internal/response"
	"github.com/madibogo/records-backend/internal/service"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   response.ErrCode
	}{
		{service.ErrAccountNotFound, http.StatusUnauthorized, response.ErrInvalidCredentials},
		{service.ErrInvalidCredentials, http.StatusUnauthorized, response.ErrInvalidCredentials},
		{service.ErrTokenExpired, http.StatusUnauthorized, response.ErrTokenExpired},
		{service.ErrAccessDenied, http.StatusForbidden, response.ErrForbidden},
		{service.ErrMarkOutOfRange, http.StatusBadRequest, response.ErrMarkOutOfRange},
		{service.ErrDuplicateEnrollment, http.StatusBadRequest, response.ErrDuplicateEnrollment},
		{service.ErrInvalidTransition, http.StatusBadRequest, response.ErrInvalidTransition},
		{service.ErrHasDependents, http.StatusBadRequest, response.ErrHasDependents},
		{fmt.Errorf("enroll: %w", service.ErrInvalidReference), http.StatusBadRequest, response.ErrInvalidReference},
		{service.ErrEnrollmentNotFound, http.StatusNotFound, response.ErrNotFound},
		{service.ErrStudentNotFound, http.StatusNotFound, response.ErrNotFound},
		{service.ErrModuleExists, http.StatusConflict, response.ErrConflict},
		{service.ErrEmailTaken, http.StatusConflict, response.ErrConflict},
		{errors.New("connection reset"), http.StatusInternalServerError, response.ErrInternal},
	}
	for _, tt := range tests {
		status, code := classify(tt.err)
		if status != tt.status || code != tt.code {
			t.Errorf("classify(%v) = %d %s, want %d %s", tt.err, status, code, tt.status, tt.code)
		}
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, errors.New("pq: relation \"students\" does not exist"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if len(c.Errors) != 1 {
		t.Fatalf("error not attached for logging: %v", c.Errors)
	}
	if body := w.Body.String(); strings.Contains(body, "relation") {
		t.Fatalf("store detail leaked: %s", body)
	}
}

func TestParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for raw, ok := range map[string]bool{"12": true, "0": false, "-3": false, "x": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		_, got := paramID(c, "id")
		if got != ok {
			t.Errorf("paramID(%q) ok = %v, want %v", raw, got, ok)
		}
		if !ok && w.Code != http.StatusBadRequest {
			t.Errorf("paramID(%q) status = %d, want 400", raw, w.Code)
		}
	}
}
