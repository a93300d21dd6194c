package alerts

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/domain/models"
)

// Engine derives alerts from stock state. Its methods append to a state
// document the caller already holds inside a write cycle; the engine itself
// never touches the store.
type Engine struct {
	logger *zap.Logger
}

// NewEngine constructs an alert engine.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// OnMovementApplied records the alerts for a just-applied stock movement.
//
// A stock_level alert fires when the derived level changed, or again on every
// movement while the level stays red. A movement audit alert of level info
// fires unconditionally.
func (e *Engine) OnMovementApplied(state *models.State, product *models.Product, movementType models.MovementType, quantity, previousStock, newStock int, now time.Time) {
	oldLevel := models.LevelFor(previousStock, product.WarningThreshold, product.CriticalThreshold)
	newLevel := models.LevelFor(newStock, product.WarningThreshold, product.CriticalThreshold)

	if newLevel != oldLevel || newLevel == models.LevelRed {
		var message string
		switch {
		case newLevel == models.LevelRed:
			message = fmt.Sprintf("CRITICAL: %s stock is critically low (%d units)", product.Name, newStock)
		case newLevel == models.LevelYellow:
			message = fmt.Sprintf("WARNING: %s stock is running low (%d units)", product.Name, newStock)
		case newLevel == models.LevelGreen && oldLevel != models.LevelGreen:
			message = fmt.Sprintf("RESTORED: %s stock is back to healthy levels (%d units)", product.Name, newStock)
		}
		if message != "" {
			e.append(state, product.ID, models.AlertStockLevel, newLevel, message, now)
		}
	}

	direction := "removed"
	if movementType == models.MovementIn {
		direction = "added"
	}
	e.append(state, product.ID, models.AlertMovement, models.LevelInfo,
		fmt.Sprintf("Stock %s: %d units of %s (%d → %d)", direction, quantity, product.Name, previousStock, newStock), now)
}

// OnScheduledCheck records a scheduled_check alert when the product is
// currently unhealthy. There is no deduplication against earlier alerts;
// every invocation re-emits while the product stays red or yellow.
func (e *Engine) OnScheduledCheck(state *models.State, product *models.Product, now time.Time) {
	level := product.Level()
	if level != models.LevelRed && level != models.LevelYellow {
		return
	}

	severity := "WARNING"
	if level == models.LevelRed {
		severity = "CRITICAL"
	}
	e.append(state, product.ID, models.AlertScheduledCheck, level,
		fmt.Sprintf("%s: %s has only %d units in stock", severity, product.Name, product.CurrentStock), now)
}

func (e *Engine) append(state *models.State, productID int64, alertType models.AlertType, level models.StockLevel, message string, now time.Time) {
	state.Counters.Alerts++
	state.Alerts = append(state.Alerts, models.Alert{
		ID:        state.Counters.Alerts,
		ProductID: productID,
		AlertType: alertType,
		Level:     level,
		Message:   message,
		CreatedAt: now,
	})

	e.logger.Debug("alert appended",
		zap.Int64("product_id", productID),
		zap.String("alert_type", string(alertType)),
		zap.String("level", string(level)))
}
