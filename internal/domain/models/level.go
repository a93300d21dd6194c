package models

// StockLevel is the derived health classification of a product's stock.
// It is never persisted on the product; callers recompute it with LevelFor.
type StockLevel string

const (
	LevelRed    StockLevel = "red"
	LevelYellow StockLevel = "yellow"
	LevelGreen  StockLevel = "green"

	// LevelInfo is used only by movement audit alerts, never by LevelFor.
	LevelInfo StockLevel = "info"
)

// LevelFor classifies stock against the product thresholds.
// Boundaries are inclusive: stock equal to the critical threshold is red,
// stock equal to the warning threshold is yellow.
func LevelFor(stock, warning, critical int) StockLevel {
	switch {
	case stock <= critical:
		return LevelRed
	case stock <= warning:
		return LevelYellow
	default:
		return LevelGreen
	}
}
