package models

import "time"

// Product is a catalog entry. CurrentStock is only ever mutated through the
// stock ledger so the movement history stays consistent with it.
type Product struct {
	ID                int64     `bson:"id" json:"id"`
	SKU               string    `bson:"sku" json:"sku"`
	Name              string    `bson:"name" json:"name"`
	Category          string    `bson:"category" json:"category"`
	Collection        string    `bson:"collection" json:"collection"`
	ImageURL          string    `bson:"image_url" json:"image_url"`
	CurrentStock      int       `bson:"current_stock" json:"current_stock"`
	WarningThreshold  int       `bson:"warning_threshold" json:"warning_threshold"`
	CriticalThreshold int       `bson:"critical_threshold" json:"critical_threshold"`
	Price             int64     `bson:"price" json:"price"`
	COGS              int64     `bson:"cogs" json:"cogs"`
	ShopeeID          string    `bson:"shopee_id,omitempty" json:"shopee_id,omitempty"`
	ShopifyID         string    `bson:"shopify_id,omitempty" json:"shopify_id,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// Level derives the current health classification.
func (p Product) Level() StockLevel {
	return LevelFor(p.CurrentStock, p.WarningThreshold, p.CriticalThreshold)
}

// ProductView is a Product enriched with its derived stock level for read paths.
type ProductView struct {
	Product
	StockLevel StockLevel `json:"stock_level"`
}

// NewProduct carries the fields accepted when creating a catalog entry.
// Optional fields are pointers; nil selects the catalog default.
type NewProduct struct {
	SKU               string `json:"sku" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Category          string `json:"category"`
	Collection        string `json:"collection"`
	ImageURL          string `json:"image_url"`
	CurrentStock      *int   `json:"current_stock"`
	WarningThreshold  *int   `json:"warning_threshold"`
	CriticalThreshold *int   `json:"critical_threshold"`
	Price             *int64 `json:"price"`
	COGS              *int64 `json:"cogs"`
}

// ProductPatch is a partial update. A nil field leaves the stored value
// unchanged; CurrentStock is deliberately absent since stock only moves
// through the ledger.
type ProductPatch struct {
	Name              *string `json:"name"`
	Category          *string `json:"category"`
	Collection        *string `json:"collection"`
	ImageURL          *string `json:"image_url"`
	WarningThreshold  *int    `json:"warning_threshold"`
	CriticalThreshold *int    `json:"critical_threshold"`
	Price             *int64  `json:"price"`
	COGS              *int64  `json:"cogs"`
	ShopeeID          *string `json:"shopee_id"`
	ShopifyID         *string `json:"shopify_id"`
}
