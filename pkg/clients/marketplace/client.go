package marketplace

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client exposes the marketplace operations used by the sync service.
type Client interface {
	PushStockLevels(ctx context.Context, req PushStockRequest) (*PushStockResponse, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	shopID     string
}

// NewClient builds a marketplace API client for one configured platform.
func NewClient(baseURL, accessToken, shopID string) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", accessToken)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		shopID:     shopID,
	}
}

// StockItem carries one product's stock state for the marketplace listing.
type StockItem struct {
	ListingID string `json:"listing_id"`
	SKU       string `json:"sku"`
	Stock     int    `json:"stock"`
}

// PushStockRequest is the payload for a bulk stock update.
type PushStockRequest struct {
	Items []StockItem
}

// PushStockResponse mirrors the successful response from the marketplace.
type PushStockResponse struct {
	Updated int `json:"updated"`
}

// apiError represents a marketplace API error payload.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// PushStockLevels sends the current stock for the linked listings.
func (c *APIClient) PushStockLevels(ctx context.Context, req PushStockRequest) (*PushStockResponse, error) {
	payload := map[string]any{
		"shop_id": c.shopID,
		"items":   req.Items,
	}

	result := new(PushStockResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(result).
		SetError(apiErr).
		Post("/stock/update")
	if err != nil {
		return nil, fmt.Errorf("push stock levels: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := ""
		code := resp.StatusCode()
		if apiErr != nil {
			message = apiErr.Error.Message
			if apiErr.Error.Code != 0 {
				code = apiErr.Error.Code
			}
		}
		return nil, fmt.Errorf("marketplace api error: code=%d, message=%s", code, message)
	}

	return result, nil
}
