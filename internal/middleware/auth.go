package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AstroBookings/api-system/internal/pkg/response"
	"github.com/AstroBookings/api-system/internal/pkg/token"
)

// ContextUserIDKey is where the bearer guard stores the authenticated
// subject. Downstream handlers learn "who is calling" only through this
// key; there is no server-side session.
const ContextUserIDKey = "user_id"

// TokenAuth validates the Authorization bearer token and attaches its
// subject to the request context.
func TokenAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.Fields(header)
		if len(parts) < 2 || parts[1] == "" {
			response.AbortError(c, http.StatusUnauthorized, "No token provided")
			return
		}
		payload, err := tokens.Validate(parts[1])
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid token")
			return
		}
		c.Set(ContextUserIDKey, payload.Sub)
		c.Next()
	}
}

// UserID returns the subject attached by TokenAuth, or "" when the
// request did not pass the guard.
func UserID(c *gin.Context) string {
	value, _ := c.Get(ContextUserIDKey)
	id, _ := value.(string)
	return id
}
