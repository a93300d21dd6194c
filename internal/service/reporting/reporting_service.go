package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/repository/sheets"
	"github.com/siennesavenue/inventory/internal/service/dashboard"
)

const (
	dateLayout        = "2006-01-02"
	summaryWriteRange = "Inventory!A:H"
)

// Service appends daily inventory summaries to a spreadsheet so the dashboard
// numbers leave a durable trail outside the store.
type Service struct {
	repo      sheets.Repository
	dashboard *dashboard.Service
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a reporting service instance.
func NewService(repository sheets.Repository, dash *dashboard.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:      repository,
		dashboard: dash,
		logger:    logger,
		now:       time.Now,
	}
}

// AppendDailySummary writes one row with today's aggregate inventory state.
func (s *Service) AppendDailySummary(ctx context.Context) error {
	summary, err := s.dashboard.Summarize(ctx)
	if err != nil {
		return fmt.Errorf("summarize inventory: %w", err)
	}

	now := s.now().UTC()
	row := []interface{}{
		now.Format(dateLayout),
		summary.TotalProducts,
		summary.TotalStock,
		summary.StockLevels.Red,
		summary.StockLevels.Yellow,
		summary.StockLevels.Green,
		summary.UnreadAlerts,
		now.Format(time.RFC3339),
	}

	if err := s.repo.AppendRow(ctx, summaryWriteRange, row); err != nil {
		return fmt.Errorf("append summary row: %w", err)
	}

	s.logger.Info("daily inventory summary appended",
		zap.Int("total_products", summary.TotalProducts),
		zap.Int("total_stock", summary.TotalStock))
	return nil
}
