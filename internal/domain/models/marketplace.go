package models

import "time"

// MarketplaceConfig stores credentials for one marketplace platform.
// At most one config exists per platform; saving again replaces it.
type MarketplaceConfig struct {
	ID          int64      `bson:"id" json:"id"`
	Platform    string     `bson:"platform" json:"platform"`
	APIKey      string     `bson:"api_key" json:"api_key"`
	APISecret   string     `bson:"api_secret" json:"api_secret"`
	ShopID      string     `bson:"shop_id" json:"shop_id"`
	AccessToken string     `bson:"access_token" json:"access_token"`
	IsActive    bool       `bson:"is_active" json:"is_active"`
	LastSync    *time.Time `bson:"last_sync" json:"last_sync"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
}

// MarketplaceConfigView is the credential-free projection returned by the API.
type MarketplaceConfigView struct {
	ID       int64      `json:"id"`
	Platform string     `json:"platform"`
	ShopID   string     `json:"shop_id"`
	IsActive bool       `json:"is_active"`
	LastSync *time.Time `json:"last_sync"`
}

// MarketplaceConfigInput is the inbound payload for saving platform credentials.
type MarketplaceConfigInput struct {
	Platform    string `json:"platform" binding:"required"`
	APIKey      string `json:"api_key"`
	APISecret   string `json:"api_secret"`
	ShopID      string `json:"shop_id"`
	AccessToken string `json:"access_token"`
}
