package handler

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AstroBookings/api-system/internal/middleware"
	"github.com/AstroBookings/api-system/internal/pkg/token"
)

type RouterDeps struct {
	Users  *UserHandler
	Auth   *AuthHandler
	Tokens *token.Service
	APIKey string
	Logger *zap.Logger
}

// NewRouter wires the HTTP surface. Guards are explicit middleware in
// order: API key first, then bearer token.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.AccessLog(deps.Logger))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	apiKeyGuard := middleware.APIKeyAuth(deps.APIKey, deps.Logger)
	tokenGuard := middleware.TokenAuth(deps.Tokens)

	users := router.Group("/api/users")
	users.GET("/ping", deps.Users.Ping)
	users.POST("/register", deps.Users.Register)
	users.POST("/login", deps.Users.Login)
	users.DELETE("/", apiKeyGuard, tokenGuard, deps.Users.Delete)
	users.GET("/:id", apiKeyGuard, deps.Users.FindByID)

	authentication := router.Group("/api/authentication")
	authentication.GET("/ping", deps.Auth.Ping)
	authentication.POST("/register", deps.Auth.Register)
	authentication.POST("/login", deps.Auth.Login)
	authentication.DELETE("/user", deps.Auth.DeleteByCredentials)

	admin := router.Group("/api/admin")
	admin.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	return router
}
