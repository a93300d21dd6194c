package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/domain/models"
	syncsvc "github.com/siennesavenue/inventory/internal/service/sync"
)

// MarketplaceHandler handles marketplace config and sync HTTP events.
type MarketplaceHandler struct {
	svc    *syncsvc.Service
	logger *zap.Logger
}

// NewMarketplaceHandler constructs the HTTP handler adapter.
func NewMarketplaceHandler(svc *syncsvc.Service, logger *zap.Logger) *MarketplaceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarketplaceHandler{svc: svc, logger: logger}
}

// ListConfigs returns the stored configurations without credentials.
func (h *MarketplaceHandler) ListConfigs(c *gin.Context) {
	configs, err := h.svc.ListConfigs(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

// SaveConfig stores credentials for a platform.
func (h *MarketplaceHandler) SaveConfig(c *gin.Context) {
	var input models.MarketplaceConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid marketplace config payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.SaveConfig(c.Request.Context(), input); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s configuration saved", input.Platform)})
}

// SyncPlatform runs a single platform sync.
func (h *MarketplaceHandler) SyncPlatform(platform string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := h.svc.SyncPlatform(c.Request.Context(), platform)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":         fmt.Sprintf("%s sync completed", platform),
			"synced_products": result.SyncedProducts,
			"note":            "Configure real API keys for live sync",
		})
	}
}

// SyncAll triggers every configured platform sync.
func (h *MarketplaceHandler) SyncAll(c *gin.Context) {
	if err := h.svc.SyncAll(c.Request.Context()); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All marketplaces synced"})
}
