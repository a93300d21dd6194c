package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/config"
	"github.com/siennesavenue/inventory/internal/service/alerts"
	"github.com/siennesavenue/inventory/internal/service/reporting"
	syncsvc "github.com/siennesavenue/inventory/internal/service/sync"
)

const jobTimeout = 2 * time.Minute

// Scheduler manages the background jobs: the hourly low-stock sweep, the
// marketplace sync and the optional daily summary report.
type Scheduler struct {
	cron         *cron.Cron
	alertsSvc    *alerts.Service
	syncSvc      *syncsvc.Service
	reportingSvc *reporting.Service
	cfg          config.SchedulerConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. reportingSvc may be nil when
// sheet reporting is not configured.
func NewScheduler(cfg config.SchedulerConfig, alertsSvc *alerts.Service, syncSvc *syncsvc.Service, reportingSvc *reporting.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour,
	// dom, month, dow), which matches the configured expressions.
	var opts []cron.Option
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		opts = append(opts, cron.WithLocation(loc))
	} else {
		logger.Warn("invalid timezone, falling back to local", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}
	c := cron.New(opts...)

	return &Scheduler{
		cron:         c,
		alertsSvc:    alertsSvc,
		syncSvc:      syncSvc,
		reportingSvc: reportingSvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler",
		zap.String("sweep_schedule", s.cfg.SweepSchedule),
		zap.String("sync_schedule", s.cfg.SyncSchedule))

	if _, err := s.cron.AddFunc(s.cfg.SweepSchedule, s.runLowStockSweep); err != nil {
		s.logger.Error("failed to schedule low stock sweep", zap.Error(err))
	}

	if _, err := s.cron.AddFunc(s.cfg.SyncSchedule, s.runMarketplaceSync); err != nil {
		s.logger.Error("failed to schedule marketplace sync", zap.Error(err))
	}

	if s.reportingSvc != nil {
		if _, err := s.cron.AddFunc(s.cfg.ReportSchedule, s.runDailyReport); err != nil {
			s.logger.Error("failed to schedule daily report", zap.Error(err))
		}
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runLowStockSweep() {
	s.logger.Info("checking for low stock items")
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.alertsSvc.RunSweep(ctx); err != nil {
		s.logger.Error("low stock sweep failed", zap.Error(err))
	}
}

func (s *Scheduler) runMarketplaceSync() {
	s.logger.Info("running scheduled marketplace sync")
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.syncSvc.SyncAll(ctx); err != nil {
		s.logger.Error("scheduled marketplace sync failed", zap.Error(err))
	}
}

func (s *Scheduler) runDailyReport() {
	s.logger.Info("generating daily inventory report")
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.reportingSvc.AppendDailySummary(ctx); err != nil {
		s.logger.Error("daily report failed", zap.Error(err))
	}
}
