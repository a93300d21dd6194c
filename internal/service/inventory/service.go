package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/domain/models"
	"github.com/siennesavenue/inventory/internal/service/alerts"
	"github.com/siennesavenue/inventory/internal/store"
)

const (
	defaultWarningThreshold  = 10
	defaultCriticalThreshold = 5
	defaultMovementSource    = "manual"
	defaultMovementLimit     = 100
)

// Service owns the product catalog and the stock ledger. Every stock change
// goes through ApplyMovement so the movement history and the catalog never
// disagree.
type Service struct {
	store  *store.Store
	engine *alerts.Engine
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires an inventory service instance.
func NewService(st *store.Store, engine *alerts.Engine, logger *zap.Logger) *Service {
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

// CreateProduct adds a catalog entry and returns its id.
func (s *Service) CreateProduct(ctx context.Context, input models.NewProduct) (int64, error) {
	if input.SKU == "" || input.Name == "" {
		return 0, fmt.Errorf("sku and name are required: %w", models.ErrValidation)
	}

	stock := intOrDefault(input.CurrentStock, 0)
	warning := intOrDefault(input.WarningThreshold, defaultWarningThreshold)
	critical := intOrDefault(input.CriticalThreshold, defaultCriticalThreshold)

	if stock < 0 {
		return 0, fmt.Errorf("current_stock must not be negative: %w", models.ErrValidation)
	}
	if critical > warning {
		return 0, fmt.Errorf("critical_threshold must not exceed warning_threshold: %w", models.ErrValidation)
	}

	var id int64
	err := s.store.Update(ctx, func(state *models.State) error {
		for i := range state.Products {
			if state.Products[i].SKU == input.SKU {
				return fmt.Errorf("sku %q: %w", input.SKU, models.ErrDuplicateSKU)
			}
		}

		now := s.now().UTC()
		state.Counters.Products++
		id = state.Counters.Products
		state.Products = append(state.Products, models.Product{
			ID:                id,
			SKU:               input.SKU,
			Name:              input.Name,
			Category:          input.Category,
			Collection:        input.Collection,
			ImageURL:          input.ImageURL,
			CurrentStock:      stock,
			WarningThreshold:  warning,
			CriticalThreshold: critical,
			Price:             int64OrDefault(input.Price, 0),
			COGS:              int64OrDefault(input.COGS, 0),
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("product created", zap.Int64("id", id), zap.String("sku", input.SKU))
	return id, nil
}

// UpdateProduct applies a partial update. Nil patch fields keep their stored
// values; stock is not updatable here, only through ApplyMovement.
func (s *Service) UpdateProduct(ctx context.Context, id int64, patch models.ProductPatch) error {
	return s.store.Update(ctx, func(state *models.State) error {
		product := state.ProductByID(id)
		if product == nil {
			return fmt.Errorf("product %d: %w", id, models.ErrNotFound)
		}

		setString(&product.Name, patch.Name)
		setString(&product.Category, patch.Category)
		setString(&product.Collection, patch.Collection)
		setString(&product.ImageURL, patch.ImageURL)
		setString(&product.ShopeeID, patch.ShopeeID)
		setString(&product.ShopifyID, patch.ShopifyID)
		if patch.WarningThreshold != nil {
			product.WarningThreshold = *patch.WarningThreshold
		}
		if patch.CriticalThreshold != nil {
			product.CriticalThreshold = *patch.CriticalThreshold
		}
		if patch.Price != nil {
			product.Price = *patch.Price
		}
		if patch.COGS != nil {
			product.COGS = *patch.COGS
		}

		if product.CriticalThreshold > product.WarningThreshold {
			return fmt.Errorf("critical_threshold must not exceed warning_threshold: %w", models.ErrValidation)
		}

		product.UpdatedAt = s.now().UTC()
		return nil
	})
}

// GetProduct returns a single product with its derived stock level.
func (s *Service) GetProduct(ctx context.Context, id int64) (models.ProductView, error) {
	var view models.ProductView
	err := s.store.View(ctx, func(state *models.State) error {
		product := state.ProductByID(id)
		if product == nil {
			return fmt.Errorf("product %d: %w", id, models.ErrNotFound)
		}
		view = models.ProductView{Product: *product, StockLevel: product.Level()}
		return nil
	})
	return view, err
}

// ListProducts returns the catalog sorted by name, levels computed at read time.
func (s *Service) ListProducts(ctx context.Context) ([]models.ProductView, error) {
	views := []models.ProductView{}
	err := s.store.View(ctx, func(state *models.State) error {
		for i := range state.Products {
			views = append(views, models.ProductView{
				Product:    state.Products[i],
				StockLevel: state.Products[i].Level(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}

// ApplyMovement validates and applies a stock mutation as one atomic unit:
// the catalog update, the movement append and the alert appends either all
// happen or none do. A movement that would drive stock negative is rejected
// with ErrInsufficientStock and leaves the store untouched.
func (s *Service) ApplyMovement(ctx context.Context, req models.MovementRequest) (models.MovementResult, error) {
	var result models.MovementResult

	if !req.MovementType.Valid() {
		return result, fmt.Errorf("movement_type must be %q or %q: %w", models.MovementIn, models.MovementOut, models.ErrValidation)
	}
	if req.Quantity <= 0 {
		return result, fmt.Errorf("quantity must be positive: %w", models.ErrValidation)
	}

	source := req.Source
	if source == "" {
		source = defaultMovementSource
	}

	err := s.store.Update(ctx, func(state *models.State) error {
		product := state.ProductByID(req.ProductID)
		if product == nil {
			return fmt.Errorf("product %d: %w", req.ProductID, models.ErrNotFound)
		}

		previousStock := product.CurrentStock
		newStock := previousStock + req.Quantity
		if req.MovementType == models.MovementOut {
			newStock = previousStock - req.Quantity
		}

		if newStock < 0 {
			return fmt.Errorf("product %d has %d units, cannot remove %d: %w",
				product.ID, previousStock, req.Quantity, models.ErrInsufficientStock)
		}

		now := s.now().UTC()
		product.CurrentStock = newStock
		product.UpdatedAt = now

		state.Counters.Movements++
		state.Movements = append(state.Movements, models.StockMovement{
			ID:            state.Counters.Movements,
			ProductID:     product.ID,
			MovementType:  req.MovementType,
			Quantity:      req.Quantity,
			PreviousStock: previousStock,
			NewStock:      newStock,
			Source:        source,
			Notes:         req.Notes,
			CreatedAt:     now,
		})

		s.engine.OnMovementApplied(state, product, req.MovementType, req.Quantity, previousStock, newStock, now)

		result = models.MovementResult{
			PreviousStock: previousStock,
			NewStock:      newStock,
			StockLevel:    product.Level(),
		}
		return nil
	})
	if err != nil {
		return models.MovementResult{}, err
	}

	s.logger.Info("stock movement applied",
		zap.Int64("product_id", req.ProductID),
		zap.String("movement_type", string(req.MovementType)),
		zap.Int("quantity", req.Quantity),
		zap.Int("new_stock", result.NewStock),
		zap.String("stock_level", string(result.StockLevel)))

	return result, nil
}

// ListMovements returns movements newest first, enriched with catalog naming.
// A productID of zero returns movements for the whole catalog.
func (s *Service) ListMovements(ctx context.Context, productID int64, limit int) ([]models.MovementView, error) {
	if limit <= 0 {
		limit = defaultMovementLimit
	}

	views := []models.MovementView{}
	err := s.store.View(ctx, func(state *models.State) error {
		for i := len(state.Movements) - 1; i >= 0 && len(views) < limit; i-- {
			movement := state.Movements[i]
			if productID != 0 && movement.ProductID != productID {
				continue
			}
			view := models.MovementView{StockMovement: movement}
			if p := state.ProductByID(movement.ProductID); p != nil {
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

func intOrDefault(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func int64OrDefault(v *int64, fallback int64) int64 {
	if v == nil {
		return fallback
	}
	return *v
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
