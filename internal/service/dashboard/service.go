package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/domain/models"
	"github.com/siennesavenue/inventory/internal/store"
)

const recentMovementLimit = 10

// LevelCounts is the stock level histogram across the catalog.
type LevelCounts struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
}

// Summary is the aggregated dashboard projection. It is recomputed in full on
// every call; nothing here is cached or persisted.
type Summary struct {
	TotalProducts   int                   `json:"total_products"`
	TotalStock      int                   `json:"total_stock"`
	StockLevels     LevelCounts           `json:"stock_levels"`
	UnreadAlerts    int                   `json:"unread_alerts"`
	RecentMovements []models.MovementView `json:"recent_movements"`
}

// Service produces read-only summaries over catalog, ledger and alert state.
type Service struct {
	store  *store.Store
	logger *zap.Logger
}

// NewService wires a dashboard service instance.
func NewService(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, logger: logger}
}

// Summarize aggregates the current snapshot into a Summary.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	summary := Summary{RecentMovements: []models.MovementView{}}

	err := s.store.View(ctx, func(state *models.State) error {
		summary.TotalProducts = len(state.Products)

		for i := range state.Products {
			p := &state.Products[i]
			summary.TotalStock += p.CurrentStock
			switch p.Level() {
			case models.LevelRed:
				summary.StockLevels.Red++
			case models.LevelYellow:
				summary.StockLevels.Yellow++
			default:
				summary.StockLevels.Green++
			}
		}

		for i := range state.Alerts {
			if !state.Alerts[i].IsRead {
				summary.UnreadAlerts++
			}
		}

		for i := len(state.Movements) - 1; i >= 0 && len(summary.RecentMovements) < recentMovementLimit; i-- {
			view := models.MovementView{StockMovement: state.Movements[i]}
			if p := state.ProductByID(state.Movements[i].ProductID); p != nil {
				view.ProductName = p.Name
				view.SKU = p.SKU
			}
			summary.RecentMovements = append(summary.RecentMovements, view)
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}
