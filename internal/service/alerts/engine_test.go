package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/siennesavenue/inventory/internal/domain/models"
)

func TestOnMovementAppliedTransitionMatrix(t *testing.T) {
	engine := NewEngine(nil)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		previousStock int
		newStock      int
		wantAlerts    int
		wantLevel     models.StockLevel
	}{
		{"green to green emits info only", 50, 45, 1, models.LevelInfo},
		{"green to yellow warns", 12, 9, 2, models.LevelYellow},
		{"yellow to yellow stays quiet", 9, 8, 1, models.LevelInfo},
		{"yellow to red escalates", 8, 4, 2, models.LevelRed},
		{"red to red re-alerts", 3, 2, 2, models.LevelRed},
		{"red to yellow de-escalates", 4, 7, 2, models.LevelYellow},
		{"yellow to green restores", 6, 11, 2, models.LevelGreen},
		{"red to green restores", 2, 20, 2, models.LevelGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := models.NewState()
			product := &models.Product{ID: 1, Name: "Tee", WarningThreshold: 10, CriticalThreshold: 5, CurrentStock: tt.newStock}

			movementType := models.MovementOut
			quantity := tt.previousStock - tt.newStock
			if quantity < 0 {
				movementType = models.MovementIn
				quantity = -quantity
			}

			engine.OnMovementApplied(state, product, movementType, quantity, tt.previousStock, tt.newStock, now)

			assert.Len(t, state.Alerts, tt.wantAlerts)
			// the first alert carries the health level; the last is always the info audit
			assert.Equal(t, tt.wantLevel, state.Alerts[0].Level)
			last := state.Alerts[len(state.Alerts)-1]
			assert.Equal(t, models.AlertMovement, last.AlertType)
			assert.Equal(t, models.LevelInfo, last.Level)
		})
	}
}

func TestOnScheduledCheckMessages(t *testing.T) {
	engine := NewEngine(nil)
	now := time.Now()

	state := models.NewState()
	red := &models.Product{ID: 1, Name: "Tank", CurrentStock: 2, WarningThreshold: 10, CriticalThreshold: 5}
	engine.OnScheduledCheck(state, red, now)

	assert.Len(t, state.Alerts, 1)
	assert.Equal(t, "CRITICAL: Tank has only 2 units in stock", state.Alerts[0].Message)

	yellow := &models.Product{ID: 2, Name: "Skort", CurrentStock: 7, WarningThreshold: 10, CriticalThreshold: 5}
	engine.OnScheduledCheck(state, yellow, now)

	assert.Len(t, state.Alerts, 2)
	assert.Equal(t, "WARNING: Skort has only 7 units in stock", state.Alerts[1].Message)

	green := &models.Product{ID: 3, Name: "Dress", CurrentStock: 30, WarningThreshold: 10, CriticalThreshold: 5}
	engine.OnScheduledCheck(state, green, now)

	assert.Len(t, state.Alerts, 2)
}
