package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runAPIKeyGuard(t *testing.T, expected, presented string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("DELETE", "/api/users/", nil)
	if presented != "" {
		c.Request.Header.Set(APIKeyHeader, presented)
	}
	APIKeyAuth(expected, zap.NewNop())(c)
	return c, recorder
}

func TestAPIKeyAuth_RelaxedModeAllowsAll(t *testing.T) {
	c, _ := runAPIKeyGuard(t, "", "")
	assert.False(t, c.IsAborted())
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	c, recorder := runAPIKeyGuard(t, "secret", "")
	require.True(t, c.IsAborted())
	assert.Equal(t, 403, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "API Key is missing")
}

func TestAPIKeyAuth_InvalidKey(t *testing.T) {
	c, recorder := runAPIKeyGuard(t, "secret", "wrong")
	require.True(t, c.IsAborted())
	assert.Equal(t, 403, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid API Key")
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	c, _ := runAPIKeyGuard(t, "secret", "secret")
	assert.False(t, c.IsAborted())
}
