package models

import "time"

// AlertType identifies what produced an alert.
type AlertType string

const (
	AlertStockLevel     AlertType = "stock_level"
	AlertMovement       AlertType = "movement"
	AlertScheduledCheck AlertType = "scheduled_check"
)

// Alert is a generated notification. Only IsRead is mutable, and only from
// false to true.
type Alert struct {
	ID        int64      `bson:"id" json:"id"`
	ProductID int64      `bson:"product_id" json:"product_id"`
	AlertType AlertType  `bson:"alert_type" json:"alert_type"`
	Level     StockLevel `bson:"level" json:"level"`
	Message   string     `bson:"message" json:"message"`
	IsRead    bool       `bson:"is_read" json:"is_read"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}

// AlertView joins an alert with catalog naming for listings.
type AlertView struct {
	Alert
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
}
