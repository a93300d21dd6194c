package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/domain/models"
	syncsvc "github.com/siennesavenue/inventory/internal/service/sync"
)

// respondError maps domain errors to HTTP statuses. Input errors carry their
// message to the client; anything unexpected is a 500 with a generic body.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicateSKU),
		errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, syncsvc.ErrNotConfigured):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
