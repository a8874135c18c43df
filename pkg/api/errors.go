package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recollect-ai/recollect/pkg/engine"
	"github.com/recollect-ai/recollect/pkg/services"
)

// respondServiceError maps service-layer errors to HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrActiveSession):
		c.JSON(http.StatusConflict, gin.H{"error": "an in-progress session already exists for this recall set"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, services.ErrSessionEnded):
		c.JSON(http.StatusConflict, gin.H{"error": "session has already ended"})
	case errors.Is(err, services.ErrNoDuePoints):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no points are due for review"})
	case errors.Is(err, engine.ErrEngineStopped):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "server is shutting down"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
