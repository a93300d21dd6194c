package dashboard

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

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(memory.NewRepository())

	err := st.Update(context.Background(), func(state *models.State) error {
		products := []struct {
			name  string
			stock int
		}{
			{"Red Tee", 2},
			{"Yellow Tank", 8},
			{"Green Skort", 40},
			{"Green Dress", 25},
		}
		for _, p := range products {
			state.Counters.Products++
			state.Products = append(state.Products, models.Product{
				ID:                state.Counters.Products,
				Name:              p.name,
				SKU:               p.name,
				CurrentStock:      p.stock,
				WarningThreshold:  10,
				CriticalThreshold: 5,
			})
		}

		base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 12; i++ {
			state.Counters.Movements++
			state.Movements = append(state.Movements, models.StockMovement{
				ID:        state.Counters.Movements,
				ProductID: 1,
				Quantity:  1,
				CreatedAt: base.Add(time.Duration(i) * time.Hour),
			})
		}

		state.Alerts = append(state.Alerts,
			models.Alert{ID: 1, ProductID: 1, IsRead: true},
			models.Alert{ID: 2, ProductID: 1},
			models.Alert{ID: 3, ProductID: 2},
		)
		state.Counters.Alerts = 3
		return nil
	})
	require.NoError(t, err)
	return st
}

func TestSummarize(t *testing.T) {
	svc := NewService(seededStore(t), nil)

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalProducts)
	assert.Equal(t, 75, summary.TotalStock)
	assert.Equal(t, LevelCounts{Red: 1, Yellow: 1, Green: 2}, summary.StockLevels)
	assert.Equal(t, 2, summary.UnreadAlerts)

	require.Len(t, summary.RecentMovements, 10)
	assert.Equal(t, int64(12), summary.RecentMovements[0].ID)
	assert.Equal(t, int64(3), summary.RecentMovements[9].ID)
	assert.Equal(t, "Red Tee", summary.RecentMovements[0].ProductName)
}

func TestSummarizeEmptyStore(t *testing.T) {
	svc := NewService(store.New(memory.NewRepository()), nil)

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalProducts)
	assert.Zero(t, summary.TotalStock)
	assert.Zero(t, summary.UnreadAlerts)
	assert.Empty(t, summary.RecentMovements)
}
