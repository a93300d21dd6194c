package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siennesavenue/inventory/internal/domain/models"
	"github.com/siennesavenue/inventory/internal/repository/memory"
	"github.com/siennesavenue/inventory/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New(memory.NewRepository())
	svc := NewService(st, nil, nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, st
}

func TestSyncPlatformNotConfigured(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SyncPlatform(context.Background(), PlatformShopee)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSyncPlatformStampsLastSyncAndCountsLinked(t *testing.T) {
	svc, st := newTestService(t)

	require.NoError(t, svc.SaveConfig(context.Background(), models.MarketplaceConfigInput{
		Platform: PlatformShopee,
		ShopID:   "shop-1",
	}))

	err := st.Update(context.Background(), func(state *models.State) error {
		state.Products = append(state.Products,
			models.Product{ID: 1, SKU: "SKU-1", CurrentStock: 5, ShopeeID: "listing-1"},
			models.Product{ID: 2, SKU: "SKU-2", CurrentStock: 9},
		)
		return nil
	})
	require.NoError(t, err)

	result, err := svc.SyncPlatform(context.Background(), PlatformShopee)
	require.NoError(t, err)
	assert.Equal(t, PlatformShopee, result.Platform)
	assert.Equal(t, 1, result.SyncedProducts)

	require.NoError(t, st.View(context.Background(), func(state *models.State) error {
		require.Len(t, state.Marketplaces, 1)
		require.NotNil(t, state.Marketplaces[0].LastSync)
		assert.Equal(t, svc.now().UTC(), *state.Marketplaces[0].LastSync)
		return nil
	}))
}

func TestSaveConfigReplacesExistingPlatform(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveConfig(ctx, models.MarketplaceConfigInput{Platform: PlatformShopify, ShopID: "old"}))
	require.NoError(t, svc.SaveConfig(ctx, models.MarketplaceConfigInput{Platform: PlatformShopify, ShopID: "new"}))

	require.NoError(t, st.View(ctx, func(state *models.State) error {
		require.Len(t, state.Marketplaces, 1)
		assert.Equal(t, "new", state.Marketplaces[0].ShopID)
		assert.Equal(t, int64(1), state.Marketplaces[0].ID)
		return nil
	}))
}

func TestSaveConfigRequiresPlatform(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.SaveConfig(context.Background(), models.MarketplaceConfigInput{})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListConfigsRedactsCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveConfig(ctx, models.MarketplaceConfigInput{
		Platform:    PlatformShopee,
		APIKey:      "key",
		APISecret:   "secret",
		AccessToken: "token",
		ShopID:      "shop-1",
	}))

	configs, err := svc.ListConfigs(ctx)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, PlatformShopee, configs[0].Platform)
	assert.Equal(t, "shop-1", configs[0].ShopID)
	assert.True(t, configs[0].IsActive)
	assert.Nil(t, configs[0].LastSync)
}

func TestSyncAllSkipsUnconfigured(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveConfig(ctx, models.MarketplaceConfigInput{Platform: PlatformShopify}))

	require.NoError(t, svc.SyncAll(ctx))

	require.NoError(t, st.View(ctx, func(state *models.State) error {
		require.Len(t, state.Marketplaces, 1)
		assert.NotNil(t, state.Marketplaces[0].LastSync)
		return nil
	}))
}
