package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AstroBookings/api-system/internal/pkg/response"
)

// APIKeyHeader is the header carrying the shared-secret API key.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth gates a route group on a static shared secret. An empty
// expected key puts the guard in relaxed mode: every request passes.
// That bypass is intentional, for environments without a configured
// secret, and is logged once at startup.
func APIKeyAuth(expected string, logger *zap.Logger) gin.HandlerFunc {
	if expected == "" {
		logger.Warn("API_KEY is not configured, api-key guard allows all requests")
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return func(c *gin.Context) {
		presented := c.GetHeader(APIKeyHeader)
		if presented == "" {
			response.AbortError(c, http.StatusForbidden, "API Key is missing")
			return
		}
		if subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) != 1 {
			logger.Debug("api key mismatch", zap.String("path", c.FullPath()))
			response.AbortError(c, http.StatusForbidden, "Invalid API Key")
			return
		}
		c.Next()
	}
}
