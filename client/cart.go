package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"catdogeats/models"

	"github.com/google/uuid"
)

// GetCart fetches the caller's cart
func (c *Client) GetCart(ctx context.Context) (models.Cart, error) {
	var cart models.Cart
	err := c.do(ctx, http.MethodGet, "/api/cart", nil, nil, &cart)
	return cart, err
}

// AddItem puts a product into the cart and returns the updated cart.
// Each call carries a fresh idempotency key so a proxy replay does not double the quantity.
func (c *Client) AddItem(ctx context.Context, productID string, quantity int) (models.Cart, error) {
	body := struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}{productID, quantity}

	header := http.Header{}
	header.Set("Idempotency-Key", uuid.NewString())

	var cart models.Cart
	err := c.doWithHeader(ctx, http.MethodPost, "/api/cart/items", nil, header, body, &cart)
	return cart, err
}

// UpdateQuantity sets the quantity of a cart line
func (c *Client) UpdateQuantity(ctx context.Context, cartItemID string, quantity int) (models.CartItem, error) {
	body := struct {
		Quantity int `json:"quantity"`
	}{quantity}

	var item models.CartItem
	err := c.do(ctx, http.MethodPatch, "/api/cart/items/"+url.PathEscape(cartItemID), nil, body, &item)
	return item, err
}

// RemoveItem deletes a cart line
func (c *Client) RemoveItem(ctx context.Context, cartItemID string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/items/"+url.PathEscape(cartItemID), nil, nil, nil)
}

// ClearCart deletes every cart line
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/cart", nil, nil, nil)
}

// GetRecommendations fetches up to limit products for up-sell display
func (c *Client) GetRecommendations(ctx context.Context, limit int) ([]models.Recommendation, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var recs []models.Recommendation
	err := c.do(ctx, http.MethodGet, "/api/products/recommendations", q, nil, &recs)
	return recs, err
}
