package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AstroBookings/api-system/internal/middleware"
	"github.com/AstroBookings/api-system/internal/pkg/response"
	"github.com/AstroBookings/api-system/internal/service"
)

// registerRequest is the registration body. Binding failures surface as
// 422 before the service sees the input.
type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=traveler agency financial it"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (h *UserHandler) Register(c *gin.Context) {
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

func (h *UserHandler) Login(c *gin.Context) {
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

// Delete removes the authenticated subject. The bearer guard already
// resolved who is calling; there is no body.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), middleware.UserID(c)); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *UserHandler) FindByID(c *gin.Context) {
	user, err := h.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}
