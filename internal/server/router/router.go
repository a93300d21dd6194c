package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/server/handlers"
	syncsvc "github.com/siennesavenue/inventory/internal/service/sync"
)

// New wires the Gin engine with required routes and middlewares.
func New(products *handlers.ProductHandler, alerts *handlers.AlertHandler, dashboard *handlers.DashboardHandler, marketplace *handlers.MarketplaceHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/products", products.List)
		api.GET("/products/:id", products.Get)
		api.POST("/products", products.Create)
		api.PUT("/products/:id", products.Update)

		api.POST("/stock-movement", products.ApplyMovement)
		api.GET("/stock-movements", products.ListMovements)

		api.GET("/alerts", alerts.List)
		api.PUT("/alerts/read-all", alerts.MarkAllRead)
		api.PUT("/alerts/:id/read", alerts.MarkRead)

		api.GET("/dashboard", dashboard.Get)

		api.GET("/marketplace-config", marketplace.ListConfigs)
		api.POST("/marketplace-config", marketplace.SaveConfig)
		api.POST("/sync/shopee", marketplace.SyncPlatform(syncsvc.PlatformShopee))
		api.POST("/sync/shopify", marketplace.SyncPlatform(syncsvc.PlatformShopify))
		api.POST("/sync/all", marketplace.SyncAll)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
