package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_MintsAndEchoes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/api/users/ping", nil)

	RequestID()(c)

	id := RequestIDFrom(c)
	require.NotEmpty(t, id)
	assert.Len(t, id, 24)
	assert.Equal(t, id, recorder.Header().Get(RequestIDHeader))
}

func TestRequestID_AdoptsCallerSuppliedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/api/users/ping", nil)
	c.Request.Header.Set(RequestIDHeader, "caller-supplied-id")

	RequestID()(c)

	assert.Equal(t, "caller-supplied-id", RequestIDFrom(c))
	assert.Equal(t, "caller-supplied-id", recorder.Header().Get(RequestIDHeader))
}

func TestRequestIDFrom_EmptyWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, RequestIDFrom(c))
}
