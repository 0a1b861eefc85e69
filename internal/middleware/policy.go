package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/madibogo/records-backend/internal/response"
	"github.com/madibogo/records-backend/internal/service"
)

// Authorize enforces the access policy for op before the handler reads the
// request body. For OpReadOwnRecords the owner is taken from the :id path
// parameter.
func Authorize(op service.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		var owner *int
		if op == service.OpReadOwnRecords {
			if id, err := strconv.Atoi(c.Param("id")); err == nil {
				owner = &id
			}
		}

		if err := service.Authorize(GetPrincipal(c), op, owner); err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
				return
			}
			response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}
		c.Next()
	}
}
