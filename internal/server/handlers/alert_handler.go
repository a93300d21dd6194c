package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/service/alerts"
)

// AlertHandler handles alert log HTTP events.
type AlertHandler struct {
	svc    *alerts.Service
	logger *zap.Logger
}

// NewAlertHandler constructs the HTTP handler adapter.
func NewAlertHandler(svc *alerts.Service, logger *zap.Logger) *AlertHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlertHandler{svc: svc, logger: logger}
}

// List returns alerts newest first, optionally only unread ones.
func (h *AlertHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread_only") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	list, err := h.svc.ListAlerts(c.Request.Context(), unreadOnly, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// MarkRead flips one alert to read; unknown ids succeed silently.
func (h *AlertHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	if err := h.svc.MarkRead(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert marked as read"})
}

// MarkAllRead flips every alert to read.
func (h *AlertHandler) MarkAllRead(c *gin.Context) {
	if err := h.svc.MarkAllRead(c.Request.Context()); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All alerts marked as read"})
}
