package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AstroBookings/api-system/internal/pkg/apperr"
	"github.com/AstroBookings/api-system/internal/pkg/response"
)

// handleError maps the service error taxonomy onto HTTP statuses. The
// error message is the caller-facing one attached by the service.
func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, apperr.ErrConflict):
		response.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrInvalid):
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
