package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"catdogeats/models"
)

// ListInventory fetches one page of the seller's inventory
func (c *Client) ListInventory(ctx context.Context, page PageQuery) (models.Page[models.InventoryItem], error) {
	var out models.Page[models.InventoryItem]
	err := c.do(ctx, http.MethodGet, "/api/seller/inventory", page.values(), nil, &out)
	return out, err
}

// AdjustInventory applies a manual stock correction and returns the updated row
func (c *Client) AdjustInventory(ctx context.Context, productID string, adj models.InventoryAdjustment) (models.InventoryItem, error) {
	var out models.InventoryItem
	err := c.do(ctx, http.MethodPost, "/api/seller/inventory/"+url.PathEscape(productID)+"/adjustments", nil, adj, &out)
	return out, err
}

// ListSettlements fetches one page of the seller's settlement report
func (c *Client) ListSettlements(ctx context.Context, page PageQuery) (models.Page[models.Settlement], error) {
	var out models.Page[models.Settlement]
	err := c.do(ctx, http.MethodGet, "/api/seller/settlements", page.values(), nil, &out)
	return out, err
}

// GetDemandForecast fetches the demand prediction for one product
func (c *Client) GetDemandForecast(ctx context.Context, productID string) (models.DemandForecast, error) {
	var out models.DemandForecast
	err := c.do(ctx, http.MethodGet, "/api/seller/forecasts/"+url.PathEscape(productID), nil, nil, &out)
	return out, err
}

// CreateProduct registers a product with its images
func (c *Client) CreateProduct(ctx context.Context, form models.ProductForm, files []File) (models.Product, error) {
	fields := map[string]string{
		"name":        form.Name,
		"category":    form.Category,
		"price":       strconv.FormatInt(form.Price, 10),
		"stock":       strconv.Itoa(form.Stock),
		"description": form.Description,
	}

	var out models.Product
	err := c.doMultipart(ctx, "/api/seller/products", fields, files, &out)
	return out, err
}
