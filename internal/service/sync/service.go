package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/domain/models"
	"github.com/siennesavenue/inventory/internal/store"
	"github.com/siennesavenue/inventory/pkg/clients/marketplace"
)

// ErrNotConfigured indicates a sync was requested for a platform without an
// active stored configuration.
var ErrNotConfigured = errors.New("marketplace not configured")

// Supported platforms.
const (
	PlatformShopee  = "shopee"
	PlatformShopify = "shopify"
)

var platforms = []string{PlatformShopee, PlatformShopify}

// ClientFactory builds a marketplace client from stored credentials.
type ClientFactory func(cfg models.MarketplaceConfig) marketplace.Client

// SyncResult reports the outcome of one platform sync.
type SyncResult struct {
	Platform       string `json:"platform"`
	SyncedProducts int    `json:"synced_products"`
}

// Service stores marketplace credentials and runs the (stubbed) stock syncs.
// A sync stamps last_sync and, when credentials allow, pushes current stock
// for linked listings on a best-effort basis.
type Service struct {
	store     *store.Store
	newClient ClientFactory
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a marketplace sync service instance.
func NewService(st *store.Store, newClient ClientFactory, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     st,
		newClient: newClient,
		logger:    logger,
		now:       time.Now,
	}
}

// ListConfigs returns the stored configurations with credentials redacted.
func (s *Service) ListConfigs(ctx context.Context) ([]models.MarketplaceConfigView, error) {
	views := []models.MarketplaceConfigView{}
	err := s.store.View(ctx, func(state *models.State) error {
		for _, cfg := range state.Marketplaces {
			views = append(views, models.MarketplaceConfigView{
				ID:       cfg.ID,
				Platform: cfg.Platform,
				ShopID:   cfg.ShopID,
				IsActive: cfg.IsActive,
				LastSync: cfg.LastSync,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// SaveConfig stores credentials for a platform, replacing any prior config.
func (s *Service) SaveConfig(ctx context.Context, input models.MarketplaceConfigInput) error {
	if input.Platform == "" {
		return fmt.Errorf("platform is required: %w", models.ErrValidation)
	}

	return s.store.Update(ctx, func(state *models.State) error {
		cfg := models.MarketplaceConfig{
			Platform:    input.Platform,
			APIKey:      input.APIKey,
			APISecret:   input.APISecret,
			ShopID:      input.ShopID,
			AccessToken: input.AccessToken,
			IsActive:    true,
			CreatedAt:   s.now().UTC(),
		}

		for i := range state.Marketplaces {
			if state.Marketplaces[i].Platform == input.Platform {
				cfg.ID = state.Marketplaces[i].ID
				state.Marketplaces[i] = cfg
				return nil
			}
		}

		cfg.ID = int64(len(state.Marketplaces) + 1)
		state.Marketplaces = append(state.Marketplaces, cfg)
		return nil
	})
}

// SyncPlatform runs one platform sync. It fails with ErrNotConfigured when no
// active config exists; otherwise it stamps last_sync and reports how many
// products are linked to the platform.
func (s *Service) SyncPlatform(ctx context.Context, platform string) (SyncResult, error) {
	var (
		cfg   models.MarketplaceConfig
		items []marketplace.StockItem
	)

	err := s.store.Update(ctx, func(state *models.State) error {
		idx := -1
		for i := range state.Marketplaces {
			if state.Marketplaces[i].Platform == platform && state.Marketplaces[i].IsActive {
				idx = i
				break
			}
		}
		if idx == -1 {
			return fmt.Errorf("platform %q: %w", platform, ErrNotConfigured)
		}

		now := s.now().UTC()
		state.Marketplaces[idx].LastSync = &now
		cfg = state.Marketplaces[idx]

		for i := range state.Products {
			listingID := listingIDFor(platform, &state.Products[i])
			if listingID == "" {
				continue
			}
			items = append(items, marketplace.StockItem{
				ListingID: listingID,
				SKU:       state.Products[i].SKU,
				Stock:     state.Products[i].CurrentStock,
			})
		}
		return nil
	})
	if err != nil {
		return SyncResult{}, err
	}

	// Best effort: the push is a stub until real listing credentials exist.
	// A failure here never fails the sync itself.
	if s.newClient != nil && cfg.AccessToken != "" && len(items) > 0 {
		client := s.newClient(cfg)
		if _, err := client.PushStockLevels(ctx, marketplace.PushStockRequest{Items: items}); err != nil {
			s.logger.Warn("stock push failed", zap.String("platform", platform), zap.Error(err))
		}
	}

	s.logger.Info("marketplace sync completed",
		zap.String("platform", platform),
		zap.Int("synced_products", len(items)))

	return SyncResult{Platform: platform, SyncedProducts: len(items)}, nil
}

// SyncAll runs every supported platform sync, skipping unconfigured ones.
func (s *Service) SyncAll(ctx context.Context) error {
	for _, platform := range platforms {
		if _, err := s.SyncPlatform(ctx, platform); err != nil {
			if errors.Is(err, ErrNotConfigured) {
				continue
			}
			return err
		}
	}
	return nil
}

func listingIDFor(platform string, p *models.Product) string {
	switch platform {
	case PlatformShopee:
		return p.ShopeeID
	case PlatformShopify:
		return p.ShopifyID
	default:
		return ""
	}
}
