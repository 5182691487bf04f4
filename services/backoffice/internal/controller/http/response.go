package http

import (
	"errors"
	"net/http"

	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// respondError maps use-case errors onto status codes. Anything unexpected
// is logged and answered with fallback only.
func respondError(c *gin.Context, log *logger.Logger, err error, notFound, fallback string) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, MessageResponse{Message: validationErr.Message})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, MessageResponse{Message: notFound})
	case errors.Is(err, usecase.ErrConflict):
		c.JSON(http.StatusConflict, MessageResponse{Message: "Email already registered."})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Invalid username or password."})
	default:
		log.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: fallback})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, MessageResponse{Message: message})
}
