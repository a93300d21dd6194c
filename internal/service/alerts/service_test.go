package alerts

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
	svc := NewService(st, NewEngine(nil), nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, st
}

func seedProducts(t *testing.T, st *store.Store, stocks ...int) {
	t.Helper()
	err := st.Update(context.Background(), func(state *models.State) error {
		for _, stock := range stocks {
			state.Counters.Products++
			state.Products = append(state.Products, models.Product{
				ID:                state.Counters.Products,
				SKU:               "SKU-" + string(rune('A'+len(state.Products))),
				Name:              "Product",
				CurrentStock:      stock,
				WarningThreshold:  10,
				CriticalThreshold: 5,
			})
		}
		return nil
	})
	require.NoError(t, err)
}

func alertCount(t *testing.T, st *store.Store) int {
	t.Helper()
	var n int
	require.NoError(t, st.View(context.Background(), func(state *models.State) error {
		n = len(state.Alerts)
		return nil
	}))
	return n
}

func TestSweepAlertsOnlyUnhealthyProducts(t *testing.T) {
	svc, st := newTestService(t)
	seedProducts(t, st, 3, 8, 50) // red, yellow, green

	require.NoError(t, svc.RunSweep(context.Background()))

	var got []models.Alert
	require.NoError(t, st.View(context.Background(), func(state *models.State) error {
		got = append(got, state.Alerts...)
		return nil
	}))

	require.Len(t, got, 2)
	assert.Equal(t, models.AlertScheduledCheck, got[0].AlertType)
	assert.Equal(t, models.LevelRed, got[0].Level)
	assert.Contains(t, got[0].Message, "CRITICAL")
	assert.Contains(t, got[0].Message, "only 3 units")
	assert.Equal(t, models.LevelYellow, got[1].Level)
	assert.Contains(t, got[1].Message, "WARNING")
}

func TestSweepRunTwiceNoDedup(t *testing.T) {
	svc, st := newTestService(t)
	seedProducts(t, st, 3, 8, 50)

	require.NoError(t, svc.RunSweep(context.Background()))
	require.NoError(t, svc.RunSweep(context.Background()))

	// the sweep re-emits for still-unhealthy products on every run
	assert.Equal(t, 4, alertCount(t, st))
}

func TestSweepAllHealthyAppendsNothing(t *testing.T) {
	svc, st := newTestService(t)
	seedProducts(t, st, 50, 20)

	require.NoError(t, svc.RunSweep(context.Background()))
	assert.Zero(t, alertCount(t, st))
}

func TestListAlertsNewestFirstWithLimit(t *testing.T) {
	svc, st := newTestService(t)
	seedProducts(t, st, 3)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.RunSweep(context.Background()))
	}

	list, err := svc.ListAlerts(context.Background(), false, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)
	assert.Equal(t, "Product", list[0].ProductName)
}

func TestMarkReadAndUnreadFilter(t *testing.T) {
	svc, st := newTestService(t)
	seedProducts(t, st, 3)
	require.NoError(t, svc.RunSweep(context.Background()))
	require.NoError(t, svc.RunSweep(context.Background()))

	require.NoError(t, svc.MarkRead(context.Background(), 1))

	unread, err := svc.ListAlerts(context.Background(), true, 0)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, int64(2), unread[0].ID)
}

func TestMarkReadUnknownIDIsNoop(t *testing.T) {
	svc, st := newTestService(t)
	seedProducts(t, st, 3)
	require.NoError(t, svc.RunSweep(context.Background()))

	require.NoError(t, svc.MarkRead(context.Background(), 999))

	unread, err := svc.ListAlerts(context.Background(), true, 0)
	require.NoError(t, err)
	assert.Len(t, unread, 1)
}

func TestMarkAllReadIdempotent(t *testing.T) {
	svc, st := newTestService(t)
	seedProducts(t, st, 3, 8)
	require.NoError(t, svc.RunSweep(context.Background()))

	require.NoError(t, svc.MarkAllRead(context.Background()))
	require.NoError(t, svc.MarkAllRead(context.Background()))

	unread, err := svc.ListAlerts(context.Background(), true, 0)
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err := svc.ListAlerts(context.Background(), false, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
