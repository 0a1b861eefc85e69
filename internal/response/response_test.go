package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFailCarriesTopLevelMessage(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) {
		Fail(c, http.StatusBadRequest, ErrDuplicateEnrollment)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "req-1")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != GetMessage(ErrDuplicateEnrollment) {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if body.Error == nil || body.Error.Code != ErrDuplicateEnrollment {
		t.Fatalf("unexpected error body %+v", body.Error)
	}
	if body.Metadata.RequestID != "req-1" {
		t.Fatalf("expected echoed request id, got %q", body.Metadata.RequestID)
	}
}

func TestRequestIDRejectsOversizedHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) {
		Success(c, http.StatusOK, RequestID(c))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("a", 200))
	r.ServeHTTP(w, req)

	got := w.Header().Get("X-Request-ID")
	if got == "" || len(got) > maxRequestIDLength {
		t.Fatalf("expected a generated request id, got %q", got)
	}
}

func TestEveryCodeHasMessage(t *testing.T) {
	codes := []ErrCode{
		ErrInvalidCredentials, ErrTokenRequired, ErrTokenInvalid, ErrTokenExpired, ErrTokenRevoked,
		ErrForbidden, ErrValidation, ErrInvalidID, ErrMarkOutOfRange, ErrInvalidReference,
		ErrInvalidTransition, ErrNotFound, ErrConflict, ErrDuplicateEnrollment, ErrHasDependents,
		ErrRateLimitExceeded, ErrInternal,
	}
	fallback := GetMessage("SOMETHING_ELSE")
	for _, code := range codes {
		if GetMessage(code) == fallback {
			t.Errorf("code %s has no message", code)
		}
	}
}
