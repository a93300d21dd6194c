package models

import "time"

// MovementType distinguishes inbound from outbound stock changes.
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// Valid reports whether the type is one of the supported values.
func (t MovementType) Valid() bool {
	return t == MovementIn || t == MovementOut
}

// StockMovement is an immutable audit record of a single stock change.
// Once appended it is never mutated or deleted.
type StockMovement struct {
	ID            int64        `bson:"id" json:"id"`
	ProductID     int64        `bson:"product_id" json:"product_id"`
	MovementType  MovementType `bson:"movement_type" json:"movement_type"`
	Quantity      int          `bson:"quantity" json:"quantity"`
	PreviousStock int          `bson:"previous_stock" json:"previous_stock"`
	NewStock      int          `bson:"new_stock" json:"new_stock"`
	Source        string       `bson:"source" json:"source"`
	Notes         string       `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time    `bson:"created_at" json:"created_at"`
}

// MovementView joins a movement with catalog naming for listings.
type MovementView struct {
	StockMovement
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
}

// MovementRequest is the inbound payload for applying a stock movement.
type MovementRequest struct {
	ProductID    int64        `json:"product_id" binding:"required"`
	MovementType MovementType `json:"movement_type" binding:"required"`
	Quantity     int          `json:"quantity" binding:"required"`
	Source       string       `json:"source"`
	Notes        string       `json:"notes"`
}

// MovementResult reports the ledger outcome of a successful movement.
type MovementResult struct {
	PreviousStock int        `json:"previous_stock"`
	NewStock      int        `json:"new_stock"`
	StockLevel    StockLevel `json:"stock_level"`
}
