package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AstroBookings/api-system/internal/pkg/response"
	"github.com/AstroBookings/api-system/internal/service"
)

// AuthHandler serves the legacy /api/authentication surface. Register
// and login behave exactly like their /api/users counterparts; deletion
// re-validates credentials from the body instead of trusting a token.
type AuthHandler struct {
	users *service.UserService
	auth  *service.AuthService
}

func NewAuthHandler(users *service.UserService, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{users: users, auth: auth}
}

func (h *AuthHandler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Validation failed")
		return
	}
	result, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Validation failed")
		return
	}
	result, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *AuthHandler) DeleteByCredentials(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Validation failed")
		return
	}
	if err := h.auth.DeleteByCredentials(c.Request.Context(), req.Email, req.Password); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
