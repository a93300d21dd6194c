package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/config"
	"github.com/siennesavenue/inventory/internal/domain/models"
	"github.com/siennesavenue/inventory/internal/repository/memory"
	"github.com/siennesavenue/inventory/internal/repository/mongodb"
	"github.com/siennesavenue/inventory/internal/repository/sheets"
	"github.com/siennesavenue/inventory/internal/scheduler"
	"github.com/siennesavenue/inventory/internal/server/handlers"
	"github.com/siennesavenue/inventory/internal/server/router"
	alertsvc "github.com/siennesavenue/inventory/internal/service/alerts"
	dashboardsvc "github.com/siennesavenue/inventory/internal/service/dashboard"
	inventorysvc "github.com/siennesavenue/inventory/internal/service/inventory"
	reportingsvc "github.com/siennesavenue/inventory/internal/service/reporting"
	syncsvc "github.com/siennesavenue/inventory/internal/service/sync"
	"github.com/siennesavenue/inventory/internal/store"
	"github.com/siennesavenue/inventory/pkg/clients/marketplace"
	"github.com/siennesavenue/inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var repo store.Repository
	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		repo = mongoRepo
	} else {
		baseLogger.Warn("no mongodb uri configured, using in-memory store")
		repo = memory.NewRepository()
	}

	st := store.New(repo)

	engine := alertsvc.NewEngine(baseLogger.Named("alerts.engine"))
	inventorySvc := inventorysvc.NewService(st, engine, baseLogger.Named("svc.inventory"))
	alertsSvc := alertsvc.NewService(st, engine, baseLogger.Named("svc.alerts"))
	dashboardSvc := dashboardsvc.NewService(st, baseLogger.Named("svc.dashboard"))

	clientFactory := func(mc models.MarketplaceConfig) marketplace.Client {
		baseURL := cfg.Marketplace.ShopeeBaseURL
		if mc.Platform == syncsvc.PlatformShopify {
			baseURL = cfg.Marketplace.ShopifyBaseURL
		}
		return marketplace.NewClient(baseURL, mc.AccessToken, mc.ShopID)
	}
	marketplaceSvc := syncsvc.NewService(st, clientFactory, baseLogger.Named("svc.sync"))

	var reportingSvc *reportingsvc.Service
	if cfg.SheetsEnabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		reportingSvc = reportingsvc.NewService(sheetsRepo, dashboardSvc, baseLogger.Named("svc.reporting"))
	} else {
		baseLogger.Warn("sheets credentials missing, daily summary report disabled")
	}

	if err := inventorySvc.SeedCatalog(context.Background()); err != nil {
		baseLogger.Fatal("failed to seed catalog", zap.Error(err))
	}

	productHandler := handlers.NewProductHandler(inventorySvc, baseLogger.Named("handlers.products"))
	alertHandler := handlers.NewAlertHandler(alertsSvc, baseLogger.Named("handlers.alerts"))
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc, baseLogger.Named("handlers.dashboard"))
	marketplaceHandler := handlers.NewMarketplaceHandler(marketplaceSvc, baseLogger.Named("handlers.marketplace"))
	ginEngine := router.New(productHandler, alertHandler, dashboardHandler, marketplaceHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Scheduler, alertsSvc, marketplaceSvc, reportingSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      ginEngine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
