package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AstroBookings/api-system/internal/handler"
	"github.com/AstroBookings/api-system/internal/pkg/ident"
	"github.com/AstroBookings/api-system/internal/pkg/token"
	"github.com/AstroBookings/api-system/internal/repo"
	"github.com/AstroBookings/api-system/internal/service"
)

const testAPIKey = "secret"

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := repo.NewMemoryUserRepository()
	tokens := token.NewService([]byte("test-secret"), time.Hour)
	ids, err := ident.NewGenerator(0)
	require.NoError(t, err)
	logger := zap.NewNop()

	userService := service.NewUserService(users, tokens, ids, logger)
	authService := service.NewAuthService(users, logger)

	return handler.NewRouter(handler.RouterDeps{
		Users:  handler.NewUserHandler(userService),
		Auth:   handler.NewAuthHandler(userService, authService),
		Tokens: tokens,
		APIKey: testAPIKey,
		Logger: logger,
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return decoded
}

func registerBody() map[string]string {
	return map[string]string{
		"name":     "Test User",
		"email":    "test.user@test.dev",
		"password": "Password@0",
		"role":     "traveler",
	}
}
