package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/utils"
)

// presentError renders err with the status code matching the base error it
// wraps, and reports whether a response was written.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrAssistantUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": err.Error()})
	default:
		logger := utils.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unexpected error: "+err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
	return true
}
