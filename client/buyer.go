package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"catdogeats/models"
)

// Login exchanges credentials for a backend-issued access token
func (c *Client) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out models.LoginResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &out)
	return out, err
}

// ListOrders fetches one page of the caller's orders
func (c *Client) ListOrders(ctx context.Context, page PageQuery) (models.Page[models.Order], error) {
	var out models.Page[models.Order]
	err := c.do(ctx, http.MethodGet, "/api/orders", page.values(), nil, &out)
	return out, err
}

// GetOrder fetches a single order
func (c *Client) GetOrder(ctx context.Context, orderID string) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), nil, nil, &out)
	return out, err
}

// CreateInquiry submits a customer service inquiry with its attachments
func (c *Client) CreateInquiry(ctx context.Context, form models.InquiryForm, files []File) (models.Inquiry, error) {
	fields := map[string]string{
		"category": form.Category,
		"title":    form.Title,
		"content":  form.Content,
	}
	if form.OrderID != "" {
		fields["orderId"] = form.OrderID
	}

	var out models.Inquiry
	err := c.doMultipart(ctx, "/api/inquiries", fields, files, &out)
	return out, err
}

// ListInquiries fetches one page of the caller's inquiries
func (c *Client) ListInquiries(ctx context.Context, page PageQuery) (models.Page[models.Inquiry], error) {
	var out models.Page[models.Inquiry]
	err := c.do(ctx, http.MethodGet, "/api/inquiries", page.values(), nil, &out)
	return out, err
}

// CreateReview submits a product review with its images
func (c *Client) CreateReview(ctx context.Context, form models.ReviewForm, files []File) (models.Review, error) {
	fields := map[string]string{
		"productId": form.ProductID,
		"rating":    strconv.Itoa(form.Rating),
		"content":   form.Content,
	}
	if form.OrderID != "" {
		fields["orderId"] = form.OrderID
	}

	var out models.Review
	err := c.doMultipart(ctx, "/api/reviews", fields, files, &out)
	return out, err
}

// ListReviews fetches one page of reviews for a product
func (c *Client) ListReviews(ctx context.Context, productID string, page PageQuery) (models.Page[models.Review], error) {
	var out models.Page[models.Review]
	err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(productID)+"/reviews", page.values(), nil, &out)
	return out, err
}
