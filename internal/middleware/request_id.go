package middleware

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the correlation id that is echoed on every
// response and stamped on each access-log line.
const RequestIDHeader = "X-Request-Id"

const contextRequestIDKey = "request_id"

// RequestID adopts a caller-supplied correlation id or mints one, then
// makes it available to the rest of the chain and to the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = mintRequestID()
		}
		c.Set(contextRequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFrom returns the correlation id attached by RequestID, or ""
// when the middleware did not run.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(contextRequestIDKey)
}

func mintRequestID() string {
	var buf [12]byte
	_, _ = rand.Read(buf[:])
	return hex.EncodeToString(buf[:])
}
