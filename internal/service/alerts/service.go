package alerts

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/domain/models"
	"github.com/siennesavenue/inventory/internal/store"
)

const defaultListLimit = 50

// Service exposes the alert log: the scheduled sweep that feeds it and the
// read/unread API over it.
type Service struct {
	store  *store.Store
	engine *Engine
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires an alert service instance.
func NewService(st *store.Store, engine *Engine, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  st,
		engine: engine,
		logger: logger,
		now:    time.Now,
	}
}

// RunSweep re-evaluates every product's stock level and appends a
// scheduled_check alert for each one currently red or yellow. Healthy
// products produce nothing.
func (s *Service) RunSweep(ctx context.Context) error {
	var appended int64

	err := s.store.Update(ctx, func(state *models.State) error {
		before := state.Counters.Alerts
		now := s.now().UTC()
		for i := range state.Products {
			s.engine.OnScheduledCheck(state, &state.Products[i], now)
		}
		appended = state.Counters.Alerts - before
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("low stock sweep completed", zap.Int64("alerts_appended", appended))
	return nil
}

// ListAlerts returns alerts newest first, enriched with catalog naming,
// optionally restricted to unread ones.
func (s *Service) ListAlerts(ctx context.Context, unreadOnly bool, limit int) ([]models.AlertView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	views := []models.AlertView{}
	err := s.store.View(ctx, func(state *models.State) error {
		for i := len(state.Alerts) - 1; i >= 0 && len(views) < limit; i-- {
			alert := state.Alerts[i]
			if unreadOnly && alert.IsRead {
				continue
			}
			view := models.AlertView{Alert: alert}
			if p := state.ProductByID(alert.ProductID); p != nil {
				view.ProductName = p.Name
				view.SKU = p.SKU
			}
			views = append(views, view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// MarkRead flips a single alert to read. Unknown ids are a no-op.
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	return s.store.Update(ctx, func(state *models.State) error {
		for i := range state.Alerts {
			if state.Alerts[i].ID == id {
				state.Alerts[i].IsRead = true
				break
			}
		}
		return nil
	})
}

// MarkAllRead flips every alert to read. Calling it twice is harmless.
func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.store.Update(ctx, func(state *models.State) error {
		for i := range state.Alerts {
			state.Alerts[i].IsRead = true
		}
		return nil
	})
}
